// Package headlines fetches the front pages of news sites and extracts
// deduplicated headline links from them, writing one delimited file per site.
//
// This package contains domain types, interfaces and the small amount of
// pure logic shared by every implementation, following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, csv/).
package headlines
