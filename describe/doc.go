// Package describe builds flexui windows from YAML descriptions.
//
// A description names the window, its size and its content. Stores declared
// under "stores" are created once per description and can be referenced from
// any property with "$name":
//
//	title: Counter
//	width: 200
//	height: 100
//	stores:
//	  count: 0
//	content:
//	  - label: { text: "$count" }
//	  - spinner: { value: "$count", maximum: 10, wrapMode: clamp }
//
// Each content entry is a map with a single key naming the control. String
// properties bound to an int or bool store show the formatted value. Editable
// properties, such as a spinner's value, write user edits back into the
// referenced store. Descriptions with "tabs" build a tabbed window whose
// "content" is shown above every tab.
package describe
