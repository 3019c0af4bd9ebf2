package entity

// ProviderType names the source that vouches for a user's identity.
type ProviderType string

const (
	ProviderCredentials ProviderType = "credentials"
	ProviderGoogle      ProviderType = "google"
	ProviderGitHub      ProviderType = "github"
)

func (p ProviderType) String() string {
	return string(p)
}

// IsExternal reports whether the provider is an external identity provider.
func (p ProviderType) IsExternal() bool {
	switch p {
	case ProviderGoogle, ProviderGitHub:
		return true
	default:
		return false
	}
}

// ParseProviderType maps a route parameter to a known external provider.
func ParseProviderType(s string) (ProviderType, bool) {
	p := ProviderType(s)

	return p, p.IsExternal()
}
