package codegen

import (
	"sort"
	"strings"

	"screenforge/internal/scene"
)

// importNames returns the sorted, de-duplicated react-native primitives the
// elements need.
func importNames(elements []scene.Element) []string {
	set := map[string]struct{}{
		primView:       {},
		primStyleSheet: {},
	}
	for _, el := range elements {
		rule, ok := ruleFor(el.Kind)
		if !ok {
			continue
		}
		for _, name := range rule.imports {
			set[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func generateImports(elements []scene.Element) string {
	var w writer
	w.line(0, "import React, { useState } from 'react';")
	w.line(0, "import { %s } from 'react-native';", strings.Join(importNames(elements), ", "))
	return w.String()
}
