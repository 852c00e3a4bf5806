package lockfile

type Lock struct {
	Name            string             `json:"name"`
	LockfileVersion int                `json:"lockfileVersion"`
	Source          string             `json:"source"`
	Integrity       string             `json:"integrity"`
	Roots           []string           `json:"roots"`
	Packages        map[string]Package `json:"packages"`
}

type Package struct {
	Name        string   `json:"-"`
	Description string   `json:"description,omitempty"`
	Depends     []string `json:"depends,omitempty"`
}
