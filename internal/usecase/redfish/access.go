package redfish

// AllowList restricts the instances visible through the API. A nil
// *AllowList lets everything through.
type AllowList struct {
	uuids map[string]struct{}
}

// NewAllowList returns nil, meaning unrestricted, unless restrict is set or
// uuids is non-empty. A restricted empty list hides every instance.
func NewAllowList(uuids []string, restrict bool) *AllowList {
	if !restrict && len(uuids) == 0 {
		return nil
	}

	a := &AllowList{uuids: make(map[string]struct{}, len(uuids))}
	for _, u := range uuids {
		a.uuids[u] = struct{}{}
	}

	return a
}

// Permits reports whether uuid is visible.
func (a *AllowList) Permits(uuid string) bool {
	if a == nil {
		return true
	}

	_, ok := a.uuids[uuid]

	return ok
}

// Filter keeps the visible uuids, preserving order.
func (a *AllowList) Filter(uuids []string) []string {
	if a == nil {
		return uuids
	}

	out := make([]string, 0, len(uuids))

	for _, u := range uuids {
		if a.Permits(u) {
			out = append(out, u)
		}
	}

	return out
}
