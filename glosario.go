// Package glosario provides the core of a bilingual glossary browser.
// It loads curated term lists partitioned by academic domain, validates and
// merges them, and answers accent-insensitive substring searches and domain
// filters over the merged collection.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, http/, fs/).
package glosario
