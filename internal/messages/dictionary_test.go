//go:build !integration

package messages

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDictionary() Dictionary {
	return Dictionary{
		"title":  "Hi",
		"footer": Messages{"rightsReserved": "All rights reserved."},
		"about":  Messages{"body": "About us"},
		"empty":  Messages{},
	}
}

func TestDictionary_Namespace(t *testing.T) {
	d := testDictionary()

	assert.Equal(t, Messages{"body": "About us"}, d.Namespace("about"))
	assert.NotNil(t, d.Namespace("missing"))
	assert.Empty(t, d.Namespace("missing"))
	assert.Empty(t, d.Namespace("title"), "global strings are not namespaces")
}

func TestDictionary_Global(t *testing.T) {
	d := testDictionary()

	assert.Equal(t, "Hi", d.Global("title"))
	assert.Equal(t, "", d.Global("about"))
	assert.Equal(t, "", d.Global("missing"))
}

func TestDictionary_Lookup(t *testing.T) {
	d := testDictionary()

	tests := []struct {
		name      string
		namespace string
		key       string
		expected  string
	}{
		{name: "namespaced key", namespace: "footer", key: "rightsReserved", expected: "All rights reserved."},
		{name: "missing key", namespace: "footer", key: "nope", expected: "footer.nope"},
		{name: "missing namespace", namespace: "navbar", key: "home", expected: "navbar.home"},
		{name: "top level key", namespace: "", key: "title", expected: "Hi"},
		{name: "missing top level key", namespace: "", key: "nope", expected: "nope"},
		{name: "top level namespace is not text", namespace: "", key: "about", expected: "about"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, d.Lookup(tt.namespace, tt.key))
		})
	}
}

func TestDictionary_Keys(t *testing.T) {
	d := testDictionary()

	assert.Equal(t, []string{"about", "empty", "footer"}, d.Namespaces())
	assert.Equal(t, []string{"title"}, d.GlobalKeys())
	assert.Empty(t, Dictionary{}.Namespaces())
}

func TestDictionary_JSONShape(t *testing.T) {
	d := Dictionary{
		"title": "Hi",
		"about": Messages{"body": "About us"},
	}

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Hi","about":{"body":"About us"}}`, string(data))
}
