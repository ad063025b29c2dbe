package attributes

// Member is a member of a StaticEnum.
type Member struct {
	// Enum is the name of the member's enum.
	Enum string
	// Key is the member's external name.
	Key string
	// Value is the member's position in its enum.
	Value int
}

func (m Member) String() string {
	return m.Key
}

// StaticEnum is an Enum with a fixed set of members, known by their keys.
type StaticEnum struct {
	name    string
	members []Member
	byKey   map[string]Member
}

var _ Enum = (*StaticEnum)(nil)

// NewEnum returns an enum with members of the given keys, in order. Duplicate keys are
// ignored.
func NewEnum(name string, keys ...string) (enum *StaticEnum) {
	enum = &StaticEnum{name: name, members: make([]Member, 0, len(keys)), byKey: make(map[string]Member, len(keys))}
	for _, key := range keys {
		if _, ok := enum.byKey[key]; ok {
			continue
		}
		m := Member{Enum: name, Key: key, Value: len(enum.members)}
		enum.members = append(enum.members, m)
		enum.byKey[key] = m
	}
	return
}

func (enum *StaticEnum) Name() string {
	return enum.name
}

// Member returns the member with the given key, or the zero member.
func (enum *StaticEnum) Member(key string) Member {
	return enum.byKey[key]
}

func (enum *StaticEnum) Lookup(key string) (member any, ok bool) {
	m, ok := enum.byKey[key]
	if ok {
		member = m
	}
	return
}

func (enum *StaticEnum) Has(value any) bool {
	m, ok := value.(Member)
	if !ok || m.Enum != enum.name {
		return false
	}
	extant, ok := enum.byKey[m.Key]
	return ok && extant == m
}

func (enum *StaticEnum) Collection() (members []any) {
	members = make([]any, len(enum.members))
	for i, m := range enum.members {
		members[i] = m
	}
	return
}
