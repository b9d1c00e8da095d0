package scenario

// Tags is the set of labels declared on a scenario, e.g. "@api".
type Tags map[string]struct{}

// NewTags builds a tag set from names. Empty names are ignored.
func NewTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		t[n] = struct{}{}
	}
	return t
}

// Has reports whether the set contains name.
func (t Tags) Has(name string) bool {
	_, ok := t[name]
	return ok
}

// Descriptor is the read-only view of a finished scenario.
type Descriptor struct {
	Title    string
	Identity Identity
	Status   Status
	Tags     Tags
}

// NewDescriptor builds a Descriptor, deriving the identity from the
// title. An underivable identity is a harness misconfiguration and
// is returned as an error.
func NewDescriptor(
	title string,
	status Status,
	tags ...string,
) (Descriptor, error) {
	id, err := NewIdentity(title)
	if err != nil {
		return Descriptor{}, err
	}
	return Descriptor{
		Title:    title,
		Identity: id,
		Status:   status,
		Tags:     NewTags(tags...),
	}, nil
}
