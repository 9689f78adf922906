package dto

import (
	"encoding/json"
	"strings"
)

// StringList es una lista de strings que acepta dos formas en el JSON de
// entrada: un array ["CRM","Inventory"] o un string separado por comas
// "CRM,Inventory" (como lo envían los formularios). Siempre se serializa
// como array, así que la forma persistida y la enviada al modelo es la lista.
type StringList []string

// UnmarshalJSON acepta array JSON o string con comas.
func (s *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*s = nil
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var arr []string
		if err := json.Unmarshal(data, &arr); err != nil {
			return err
		}
		*s = arr
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = SplitCommaList(raw)
	return nil
}

// SplitCommaList separa un string por comas, recorta espacios y descarta
// entradas vacías.
func SplitCommaList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
