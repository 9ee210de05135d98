// Package gm (stands for geometry math) provides some geometry primitives.
//
// It includes a 2d vector type called Vec for lateral (x, y) plane math, a 3d
// vector type Vec3 for world space positions, rotations and scales, and
// helpers building the 4x4 matrices the graphics device consumes.
//
// There is also a type named Rad to represent angle values in radian.
package gm
