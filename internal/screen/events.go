package screen

// Field identifies one of the two conversion fields.
type Field int

const (
	// FieldFrom is the upper ("from") field.
	FieldFrom Field = iota
	// FieldTo is the lower ("to") field.
	FieldTo
)

// Other returns the opposite field.
func (f Field) Other() Field {
	if f == FieldFrom {
		return FieldTo
	}
	return FieldFrom
}

func (f Field) String() string {
	if f == FieldFrom {
		return "from"
	}
	return "to"
}

// Event is a user action delivered to a conversion screen.
type Event interface {
	screenEvent()
}

// DigitPressed is a number key.
type DigitPressed struct{ D string }

// DecimalPressed is the "." key.
type DecimalPressed struct{}

// BackspacePressed is the "⌫" key.
type BackspacePressed struct{}

// ClearPressed is the "AC" key.
type ClearPressed struct{}

// SignToggled is the "+/-" key.
type SignToggled struct{}

// FieldActivated moves keypad input to Field.
type FieldActivated struct{ Field Field }

// UnitSelected picks a new unit for one side.
type UnitSelected[U comparable] struct {
	Side Field
	Unit U
}

func (DigitPressed) screenEvent()     {}
func (DecimalPressed) screenEvent()   {}
func (BackspacePressed) screenEvent() {}
func (ClearPressed) screenEvent()     {}
func (SignToggled) screenEvent()      {}
func (FieldActivated) screenEvent()   {}
func (UnitSelected[U]) screenEvent()  {}
