package utils

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/near/borsh-go"
)

// EncodeEvent 将事件编码为带事件类型前缀的二进制数据：
// - 前 4 字节为事件类型（uint32，小端序）
// - 后续为 borsh 序列化的事件结构体（与链上日志同一编码规则，消费端可直接复用结构定义）
//
// borsh 把指针编码为 Option，这里先解引用，保证与 DecodeEvent(data, &out) 对称。
func EncodeEvent(eventType uint32, evt any) ([]byte, error) {
	v := reflect.ValueOf(evt)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, fmt.Errorf("EncodeEvent: nil %T", evt)
		}
		v = v.Elem()
	}
	body, err := borsh.Serialize(v.Interface())
	if err != nil {
		return nil, fmt.Errorf("EncodeEvent: serialize %T: %w", evt, err)
	}
	buf := make([]byte, 4, 4+len(body))
	binary.LittleEndian.PutUint32(buf[:4], eventType)
	return append(buf, body...), nil
}

// DecodeEvent 按 EncodeEvent 的格式拆出事件类型，并把 borsh 数据反序列化到 out
func DecodeEvent(data []byte, out any) (uint32, error) {
	if len(data) < 4 {
		return 0, fmt.Errorf("DecodeEvent: data too short: %d", len(data))
	}
	eventType := binary.LittleEndian.Uint32(data[:4])
	if err := borsh.Deserialize(out, data[4:]); err != nil {
		return eventType, fmt.Errorf("DecodeEvent: deserialize %T: %w", out, err)
	}
	return eventType, nil
}
