package types

// Key is one of the twelve pitch classes used throughout the format, in its
// on-disk code order (0x00 = C through 0x0B = B).
type Key int

const (
	KeyC Key = iota
	KeyCSharp
	KeyD
	KeyEFlat
	KeyE
	KeyF
	KeyFSharp
	KeyG
	KeyGSharp
	KeyA
	KeyBFlat
	KeyB
)

// NumKeys is the number of pitch classes addressed by the format.
const NumKeys = 12

var keyNames = [NumKeys]string{
	"C", "C#", "D", "Eb", "E", "F", "F#", "G", "G#", "A", "Bb", "B",
}

// String returns the conventional name of the key.
func (k Key) String() string {
	if k < 0 || int(k) >= NumKeys {
		return "Key(?)"
	}
	return keyNames[k]
}
