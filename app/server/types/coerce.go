package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// 请求体中的标量字段按声明的类型进行转换：
// 数字字段接受 JSON 数字或数字字符串，空字符串为 0 ；
// 字符串字段接受 JSON 字符串、数字或布尔值。
// 无法转换时返回错误，null 保持原值不变。

type Int int

type Int64 int64

type Float64 float64

type String string

var nullLiteral = []byte("null")

func (v *Int) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, nullLiteral) {
		return nil
	}
	n, err := parseInteger(b, strconv.IntSize)
	if err != nil {
		return err
	}
	*v = Int(n)
	return nil
}

func (v *Int64) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, nullLiteral) {
		return nil
	}
	n, err := parseInteger(b, 64)
	if err != nil {
		return err
	}
	*v = Int64(n)
	return nil
}

func (v *Float64) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, nullLiteral) {
		return nil
	}
	f, err := parseNumber(b)
	if err != nil {
		return err
	}
	*v = Float64(f)
	return nil
}

func (v *String) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, nullLiteral) {
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = String(s)
	case 't', 'f':
		var flag bool
		if err := json.Unmarshal(b, &flag); err != nil {
			return err
		}
		*v = String(strconv.FormatBool(flag))
	default:
		f, err := parseNumber(b)
		if err != nil {
			return err
		}
		*v = String(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return nil
}

// numberText 取出 JSON 数字或字符串里的数字文本
func numberText(b []byte) (string, error) {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return "", fmt.Errorf("expected a number, got %s", b)
	}
	return n.String(), nil
}

func parseNumber(b []byte) (float64, error) {
	text, err := numberText(b)
	if err != nil {
		return 0, err
	}
	if text == "" {
		return 0, nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("cannot convert %q to a number", text)
	}
	return f, nil
}

// parseInteger 只接受整数值，1e3 或 "2023.0" 这种写法也可以
func parseInteger(b []byte, bitSize int) (int64, error) {
	text, err := numberText(b)
	if err != nil {
		return 0, err
	}
	if text == "" {
		return 0, nil
	}

	if n, err := strconv.ParseInt(text, 10, bitSize); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("cannot convert %q to an integer", text)
	}
	limit := math.Ldexp(1, bitSize-1)
	if f >= limit || f < -limit {
		return 0, fmt.Errorf("%q is out of range", text)
	}
	return int64(f), nil
}
