package internalwasm

// ModuleInstance is the minimal record the store needs to accept ownership
// tags from: its own address (checked by Store.AddInstance) and a name for
// diagnostics. Everything else about a module instance (its index spaces,
// exports) belongs to the instantiator, an external collaborator per
// spec.md §1.
type ModuleInstance struct {
	id   ModuleInstanceAddr
	Name string
}

// NewModuleInstance constructs a ModuleInstance that will claim id as its
// address; id must equal the store's current instance count when it is
// passed to Store.AddInstance.
func NewModuleInstance(id ModuleInstanceAddr, name string) *ModuleInstance {
	return &ModuleInstance{id: id, Name: name}
}

// ID returns this instance's address in its owning store.
func (m *ModuleInstance) ID() ModuleInstanceAddr { return m.id }
