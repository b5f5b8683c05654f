package dto

import "encoding/json"

// 三态可选字段：区分“未提供”“显式 null”“提供了值”。
// 部分更新接口依赖这个区分——缺省不改字段，显式 null 清空字段。

type OptionalString struct {
	Set   bool
	Valid bool // false 表示显式 null
	Value string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		return nil
	}
	o.Valid = true
	return json.Unmarshal(data, &o.Value)
}

type OptionalBool struct {
	Set   bool
	Valid bool
	Value bool
}

func (o *OptionalBool) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Valid = false
		return nil
	}
	o.Valid = true
	return json.Unmarshal(data, &o.Value)
}
