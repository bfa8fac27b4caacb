package starpick

import (
	"fmt"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"

	"github.com/riskibarqy/starpick-admin/internal/domain/pagination"
	"github.com/riskibarqy/starpick-admin/internal/usecase"
)

// Every resource declares the single path its payload lives at. A response
// missing that path, or holding the wrong JSON type there, is malformed.

func malformed(path []any, format string, args ...any) error {
	return fmt.Errorf("%w: at %s: %s", usecase.ErrMalformedResponse, joinPath(path), fmt.Sprintf(format, args...))
}

func joinPath(path []any) string {
	parts := make([]string, 0, len(path))
	for _, p := range path {
		parts = append(parts, fmt.Sprint(p))
	}
	if len(parts) == 0 {
		return "$"
	}
	return "$." + strings.Join(parts, ".")
}

func nodeAt(raw []byte, path ...any) (ast.Node, error) {
	node, err := sonic.Get(raw, path...)
	if err != nil {
		return ast.Node{}, malformed(path, "%v", err)
	}
	if node.TypeSafe() == ast.V_NULL {
		return ast.Node{}, malformed(path, "value is null")
	}
	return node, nil
}

// decodeAt decodes the object found at path into target.
func decodeAt(raw []byte, target any, path ...any) error {
	node, err := nodeAt(raw, path...)
	if err != nil {
		return err
	}
	return decodeNode(node, target, path)
}

func decodeNode(node ast.Node, target any, path []any) error {
	src, err := node.Raw()
	if err != nil {
		return malformed(path, "%v", err)
	}
	if err := sonic.UnmarshalString(src, target); err != nil {
		return malformed(path, "%v", err)
	}
	return nil
}

// decodeList decodes the list at path. Both a Laravel pagination envelope and
// a bare array are accepted; a bare array becomes a single page.
func decodeList[T any](raw []byte, path ...any) (pagination.Page[T], error) {
	node, err := nodeAt(raw, path...)
	if err != nil {
		return pagination.Page[T]{}, err
	}

	switch node.TypeSafe() {
	case ast.V_ARRAY:
		var items []T
		if err := decodeNode(node, &items, path); err != nil {
			return pagination.Page[T]{}, err
		}
		return pagination.Single(items), nil
	case ast.V_OBJECT:
		if !node.Get("data").Exists() || !node.Get("current_page").Exists() {
			return pagination.Page[T]{}, malformed(path, "object is not a pagination envelope")
		}
		var page pagination.Page[T]
		if err := decodeNode(node, &page, path); err != nil {
			return pagination.Page[T]{}, err
		}
		if page.Data == nil {
			page.Data = []T{}
		}
		if err := page.Validate(); err != nil {
			return pagination.Page[T]{}, malformed(path, "%v", err)
		}
		return page, nil
	default:
		return pagination.Page[T]{}, malformed(path, "expected array or pagination envelope")
	}
}

// decodeSlice decodes the array at path.
func decodeSlice[T any](raw []byte, path ...any) ([]T, error) {
	node, err := nodeAt(raw, path...)
	if err != nil {
		return nil, err
	}
	if node.TypeSafe() != ast.V_ARRAY {
		return nil, malformed(path, "expected array")
	}
	var items []T
	if err := decodeNode(node, &items, path); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
