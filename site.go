package headlines

// Site is a news site to scrape: its front page URL and the tag that
// carries headline text inside the site's anchors.
type Site struct {
	URL         string `yaml:"url"`
	HeadlineTag string `yaml:"tag"`
}

// Validate returns an error if the site contains invalid fields.
func (s *Site) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "site URL required")
	}
	if s.HeadlineTag == "" {
		return Errorf(EINVALID, "headline tag required for %s", s.URL)
	}
	return nil
}

// DefaultSites is the compiled-in site registry.
var DefaultSites = []Site{
	{URL: "https://www.bbc.com/", HeadlineTag: "h2"},
	{URL: "https://edition.cnn.com/", HeadlineTag: "span"},
	{URL: "https://www.indiatoday.in/", HeadlineTag: "a"},
}

// ValidateSites returns an error if the registry is empty or any site is
// invalid. An invalid registry is fatal for the whole run.
func ValidateSites(sites []Site) error {
	if len(sites) == 0 {
		return Errorf(EINVALID, "site registry is empty")
	}
	for i := range sites {
		if err := sites[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}
