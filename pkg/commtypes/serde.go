//go:generate stringer -type=SerdeFormat
package commtypes

type SerdeFormat uint8

const (
	JSON SerdeFormat = 0
	MSGP SerdeFormat = 1
)

type Encoder interface {
	Encode(interface{}) ([]byte, error)
}

type EncoderFunc func(interface{}) ([]byte, error)

func (ef EncoderFunc) Encode(v interface{}) ([]byte, error) {
	return ef(v)
}

type Decoder interface {
	Decode([]byte) (interface{}, error)
}

type DecoderFunc func([]byte) (interface{}, error)

func (df DecoderFunc) Decode(b []byte) (interface{}, error) {
	return df(b)
}

type Serde interface {
	Encoder
	Decoder
}
