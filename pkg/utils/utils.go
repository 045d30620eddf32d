package utils

import (
	"reflect"
	"testing"
)

func IsNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

func FatalMsg(expected interface{}, got interface{}, t *testing.T) {
	t.Fatalf("expected %v, got %v", expected, got)
}
