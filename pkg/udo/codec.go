package udo

// Codec converts a Udo to and from its text form.
type Codec interface {
	// Encode serializes u. Fails with an *EncodeError only when u holds
	// something the format cannot represent.
	Encode(u Udo) (string, error)

	// Decode parses text. Fails with a *DecodeError when text is not a
	// well-formed mapping in this format.
	Decode(text string) (Udo, error)

	// Name identifies the codec in errors and logs.
	Name() string
}

// Shared codec instances. Both codecs are stateless.
var (
	JSON    Codec = JSONCodec{}
	Percent Codec = PercentCodec{}
)
