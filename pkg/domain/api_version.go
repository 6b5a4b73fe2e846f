package domain

// APIVersion names a versioned route group, such as /api/v1.
type APIVersion string

const (
	APIVersionV1 APIVersion = "v1"
)

func (v APIVersion) String() string {
	return string(v)
}
