package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJSON serializa o valor com indentação de dois espaços e quebra de
// linha final
func PrettyJSON(in any) ([]byte, error) {
	out, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(out, '\n'), nil
}
