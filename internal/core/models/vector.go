package models

import (
	"encoding/json"
	"fmt"
)

// Vec2 encodes as a two element JSON array.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float32{v.X, v.Y})
}

func (v *Vec2) UnmarshalJSON(data []byte) error {
	var arr []float32
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	if len(arr) < 2 {
		return fmt.Errorf("vec2: want 2 elements, got %d", len(arr))
	}
	v.X, v.Y = arr[0], arr[1]
	return nil
}

// Vec3 encodes as a three element JSON array. It doubles as an RGB color.
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float32{v.X, v.Y, v.Z})
}

func (v *Vec3) UnmarshalJSON(data []byte) error {
	var arr []float32
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	if len(arr) < 3 {
		return fmt.Errorf("vec3: want 3 elements, got %d", len(arr))
	}
	v.X, v.Y, v.Z = arr[0], arr[1], arr[2]
	return nil
}
