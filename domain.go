package glosario

import "strings"

// Domain identifies one of the fixed academic or professional categories
// that partition the glossary.
type Domain string

// Domain constants, listed in load order.
const (
	DomainComputing         Domain = "informatica"
	DomainHealth            Domain = "salud"
	DomainArts              Domain = "artes"
	DomainHospitality       Domain = "hosteleria"
	DomainConstruction      Domain = "construccion"
	DomainIndustrial        Domain = "industrial"
	DomainElectromechanical Domain = "electromecanica"
)

// Domains returns every known domain in load order.
// The returned slice is a fresh copy and may be modified by the caller.
func Domains() []Domain {
	return []Domain{
		DomainComputing,
		DomainHealth,
		DomainArts,
		DomainHospitality,
		DomainConstruction,
		DomainIndustrial,
		DomainElectromechanical,
	}
}

// ParseDomain returns the domain matching s case-insensitively.
// Returns EINVALID if s does not name a known domain.
func ParseDomain(s string) (Domain, error) {
	d := Domain(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", Errorf(EINVALID, "unknown domain %q", s)
	}
	return d, nil
}

// Valid reports whether d is one of the known domains.
func (d Domain) Valid() bool {
	return d.DisplayName() != ""
}

// DisplayName returns the human-readable name of the domain.
// Returns an empty string for unknown domains.
func (d Domain) DisplayName() string {
	switch d {
	case DomainComputing:
		return "Informática"
	case DomainHealth:
		return "Salud"
	case DomainArts:
		return "Artes"
	case DomainHospitality:
		return "Hostelería"
	case DomainConstruction:
		return "Construcción"
	case DomainIndustrial:
		return "Industrial"
	case DomainElectromechanical:
		return "Electromecánica"
	default:
		return ""
	}
}

// String returns the domain identifier.
func (d Domain) String() string {
	return string(d)
}
