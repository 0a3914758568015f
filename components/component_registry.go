package components

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"ebiten-delve/ecs"
)

// componentNameMap maps string component names to their IDs
var componentNameMap = map[string]ecs.ComponentID{
	"Position":   Position,
	"Renderable": Renderable,
	"Observer":   Observer,
	"Agent":      Agent,
	"Name":       Name,
}

// GetComponentIDByName returns the ComponentID for a given component name string
// The lookup is case-insensitive
func GetComponentIDByName(name string) (ecs.ComponentID, bool) {
	// Try exact match first
	if id, exists := componentNameMap[name]; exists {
		return id, true
	}

	// Try case-insensitive match
	name = strings.ToLower(name)
	for compName, id := range componentNameMap {
		if strings.ToLower(compName) == name {
			return id, true
		}
	}

	return 0, false
}

// GetComponentProperty returns the value of a property in a component
// Uses reflection to access component properties dynamically
func GetComponentProperty(comp interface{}, propertyName string) (interface{}, error) {
	val := reflect.ValueOf(comp)

	// Handle pointer types
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	// Check if the property exists
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("component is not a struct: %T", comp)
	}

	field := val.FieldByName(propertyName)
	if !field.IsValid() {
		return nil, fmt.Errorf("property not found: %s", propertyName)
	}

	// Return the property value
	return field.Interface(), nil
}

// ComponentNames returns every registered component name, sorted
func ComponentNames() []string {
	names := make([]string, 0, len(componentNameMap))
	for name := range componentNameMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DescribeComponent renders the exported fields of a component as
// "Field=value" pairs, in declaration order
func DescribeComponent(comp interface{}) (string, error) {
	val := reflect.ValueOf(comp)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return "", fmt.Errorf("component is not a struct: %T", comp)
	}

	parts := make([]string, 0, val.NumField())
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)
		if !field.IsExported() {
			continue
		}
		value, err := GetComponentProperty(comp, field.Name)
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf("%s=%v", field.Name, value))
	}
	return strings.Join(parts, " "), nil
}
