package envutil

import (
	"fmt"

	"github.com/drone/envsubst"
)

// Expand substitutes environment variables in s using
// shell syntax (e.g. ${MIRROR:-https://deb.debian.org}).
func Expand(s string) (string, error) {
	val, err := envsubst.EvalEnv(s)
	if err != nil {
		return "", fmt.Errorf("expanding '%s': %w", s, err)
	}
	return val, nil
}
