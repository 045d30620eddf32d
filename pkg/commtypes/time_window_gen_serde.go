package commtypes

import (
	"encoding/json"

	"stateful-stream/pkg/common_errors"
)

type TimeWindowJSONSerde struct{}

var _ = Serde(TimeWindowJSONSerde{})

func (s TimeWindowJSONSerde) Encode(value interface{}) ([]byte, error) {
	v, ok := value.(*TimeWindow)
	if !ok {
		vTmp := value.(TimeWindow)
		v = &vTmp
	}
	return json.Marshal(v)
}

func (s TimeWindowJSONSerde) Decode(value []byte) (interface{}, error) {
	v := TimeWindow{}
	if err := json.Unmarshal(value, &v); err != nil {
		return nil, err
	}
	return v, nil
}

type TimeWindowMsgpSerde struct{}

var _ = Serde(TimeWindowMsgpSerde{})

func (s TimeWindowMsgpSerde) Encode(value interface{}) ([]byte, error) {
	v, ok := value.(*TimeWindow)
	if !ok {
		vTmp := value.(TimeWindow)
		v = &vTmp
	}
	return v.MarshalMsg(nil)
}

func (s TimeWindowMsgpSerde) Decode(value []byte) (interface{}, error) {
	v := TimeWindow{}
	if _, err := v.UnmarshalMsg(value); err != nil {
		return nil, err
	}
	return v, nil
}

func GetTimeWindowSerde(serdeFormat SerdeFormat) (Serde, error) {
	switch serdeFormat {
	case JSON:
		return TimeWindowJSONSerde{}, nil
	case MSGP:
		return TimeWindowMsgpSerde{}, nil
	default:
		return nil, common_errors.ErrUnrecognizedSerdeFormat
	}
}
