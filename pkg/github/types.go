package github

// UserRecord is a normalized snapshot of a public GitHub profile.
// Once written to the cache a record is immutable until it expires and is
// replaced wholesale.
type UserRecord struct {
	Login       string `json:"login"`
	Name        string `json:"name,omitempty"`
	Bio         string `json:"bio,omitempty"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`

	// AvatarURL is carried through but not fetched or embedded.
	AvatarURL string `json:"avatar_url,omitempty"`
	HTMLURL   string `json:"html_url,omitempty"`

	// CreatedAt is the account creation timestamp as reported by the API
	// (RFC 3339). The renderer derives the account-age level stat from it.
	CreatedAt string `json:"created_at"`
}

// apiUserResponse is the upstream GitHub API response structure.
type apiUserResponse struct {
	Login       string  `json:"login"`
	Name        *string `json:"name"`
	Bio         *string `json:"bio"`
	PublicRepos int     `json:"public_repos"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
	AvatarURL   string  `json:"avatar_url"`
	HTMLURL     string  `json:"html_url"`
	CreatedAt   string  `json:"created_at"`
}

// normalize converts the raw API response into a UserRecord, collapsing null
// optional fields and clamping counters to non-negative values.
func (r *apiUserResponse) normalize() *UserRecord {
	u := &UserRecord{
		Login:       r.Login,
		PublicRepos: max(0, r.PublicRepos),
		Followers:   max(0, r.Followers),
		Following:   max(0, r.Following),
		AvatarURL:   r.AvatarURL,
		HTMLURL:     r.HTMLURL,
		CreatedAt:   r.CreatedAt,
	}
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Bio != nil {
		u.Bio = *r.Bio
	}
	return u
}
