package headlines_test

import (
	"testing"

	"github.com/fwojciec/headlines"
	"github.com/stretchr/testify/assert"
)

func TestDefaultDomainExtractor_GetDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		address string
		want    string
	}{
		{
			name:    "www prefix",
			address: "https://www.bbc.com/",
			want:    "bbc",
		},
		{
			name:    "subdomain prefix",
			address: "https://edition.cnn.com/",
			want:    "cnn",
		},
		{
			name:    "country tld",
			address: "https://www.indiatoday.in/",
			want:    "indiatoday",
		},
		{
			name:    "path after host",
			address: "https://sub.domain.tld/world/europe?page=2",
			want:    "domain",
		},
		{
			name:    "plain http",
			address: "http://news.example.org/",
			want:    "example",
		},
		{
			name:    "empty address passes through",
			address: "",
			want:    "",
		},
		{
			name:    "missing trailing slash does not match",
			address: "https://www.bbc.com",
			want:    "",
		},
		{
			name:    "no scheme does not match",
			address: "www.bbc.com/news",
			want:    "",
		},
		{
			name:    "host without leading label yields tld",
			address: "https://x.com/",
			want:    "com",
		},
		{
			name:    "single label host yields whole host",
			address: "http://localhost/",
			want:    "localhost",
		},
		{
			name:    "port stays on second label",
			address: "http://127.0.0.1:8080/",
			want:    "0",
		},
	}

	e := headlines.NewDomainExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, e.GetDomain(tt.address))
		})
	}
}
