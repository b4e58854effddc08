package scrape

// State is the terminal (or current) state of a single site's scrape.
type State int

// Site states in the order a scrape moves through them.
const (
	StateStart State = iota
	StateDomainResolved
	StatePageFetched
	StatePageAbsent
	StateHeadlinesExtracted
	StateHeadlinesEmpty
	StateWritten
	StateFailed
)

var stateNames = map[State]string{
	StateStart:              "start",
	StateDomainResolved:     "domain_resolved",
	StatePageFetched:        "page_fetched",
	StatePageAbsent:         "page_absent",
	StateHeadlinesExtracted: "headlines_extracted",
	StateHeadlinesEmpty:     "headlines_empty",
	StateWritten:            "written",
	StateFailed:             "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
