package utils

import "reflect"

func GetType(target interface{}) string {
	if target == nil {
		return "nil"
	}

	t := reflect.TypeOf(target)

	if t.Kind() == reflect.Ptr {
		return "*" + t.Elem().Name()
	}

	if t.Kind() == reflect.Slice {
		return "[]" + t.Elem().Name()
	}

	return t.Name()
}
