package v1

import metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

const (
	APIVersion    = "dpkg.dcas.dev/v1"
	KindSelection = "Selection"
)

type SelectionSpec struct {
	// Source is a path or URL of a status file, Packages
	// index or .deb archive. Environment variables are expanded.
	Source   string   `json:"source" toml:"source"`
	Packages []string `json:"packages,omitempty" toml:"packages"`
}

// Selection names a set of packages whose dependency closure
// should be locked.
type Selection struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty" toml:"metadata"`

	Spec SelectionSpec `json:"spec" toml:"spec"`
}
