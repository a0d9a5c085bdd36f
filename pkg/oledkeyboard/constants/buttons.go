package constants

// VirtualButton is a logical button, independent of the physical source
// (GPIO pin, input event code, desktop key) that produces it.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonSelect
)

// Buttons lists the buttons polled by the keyboard, in polling order.
var Buttons = []VirtualButton{
	VirtualButtonUp,
	VirtualButtonDown,
	VirtualButtonSelect,
}

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonSelect:
		return "Select"
	default:
		return "Unassigned"
	}
}

func (vb VirtualButton) String() string {
	return vb.GetName()
}

// ButtonFromName is the inverse of GetName. Matching is exact.
func ButtonFromName(name string) (VirtualButton, bool) {
	for _, vb := range Buttons {
		if vb.GetName() == name {
			return vb, true
		}
	}
	return VirtualButtonUnassigned, false
}
