// Package selection provides the "select" segments.
//
// The vocabulary is split by the first letter of the noun: NewHandlerAN
// owns nouns a through n (and nouns starting with a digit or an
// uppercase letter), NewHandlerOZ owns o through z. Most literals pop up
// a menu listing the candidates; the matching prefix carries the choice
// made from that menu, for example "select bone" and "select bone Hand_L".
//
// Ordinal arguments ("select keyframe 3", "select vertex 12",
// "select boneIndex 0") are written in the configured index base.
package selection
