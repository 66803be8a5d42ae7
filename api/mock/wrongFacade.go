package mock

// WrongFacade is a struct that can be used as a wrong implementation of the node router handler
type WrongFacade struct {
}

// IsInterfaceNil -
func (wf *WrongFacade) IsInterfaceNil() bool {
	return wf == nil
}
