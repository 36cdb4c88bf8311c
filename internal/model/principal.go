package model

// PrincipalKind discriminates which table backs an authenticated identity.
type PrincipalKind string

const (
	KindCustomer PrincipalKind = "customer"
	KindArtist   PrincipalKind = "artist"
	KindGallery  PrincipalKind = "gallery"
)

// ParseKind returns the kind for a raw role claim, or false for anything
// outside the three recognized values.
func ParseKind(s string) (PrincipalKind, bool) {
	switch PrincipalKind(s) {
	case KindCustomer, KindArtist, KindGallery:
		return PrincipalKind(s), true
	}
	return "", false
}

// Principal is a resolved identity. There is no global user table; the
// (ID, Kind) pair identifies the row in whichever table Kind names.
type Principal struct {
	ID    uint64
	Name  string
	Email string
	Kind  PrincipalKind
}
