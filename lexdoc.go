// Package lexdoc provides ingestion and ranked retrieval of legal-document
// listings published on the UIDAI website. It scrapes listing pages into
// canonical document records, stores them with change-aware deduplication,
// and answers free-text queries with a hybrid relevance+recency ranking.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gemini/).
package lexdoc

import "time"

// ReferenceLocation returns the fixed reference timezone (IST, UTC+5:30)
// in which published dates are interpreted and document age is measured.
// It is passed explicitly to the components that need it so tests can
// substitute a fixed clock.
func ReferenceLocation() *time.Location {
	return time.FixedZone("IST", 5*3600+30*60)
}
