package jtrack

import "strconv"

// memberPath returns the structural path of the object member named key
// under parent. The key is taken as written in the source, undecoded.
func memberPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// elemPath returns the structural path of array element i under parent.
func elemPath(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}
