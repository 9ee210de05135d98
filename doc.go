// Package skyrail is the simulation core of a rail shooter.
//
// A Player flies along the +Z axis and slides in the XY plane. A FireControl
// launches pooled Bullets from the player, a TargetManager keeps a fixed set
// of Targets along the rail, and a Reticule marks the nearest target in the
// line of fire. CollisionCheck matches bullets against targets. All of it is
// put together by a Level, which is updated and drawn once per frame.
//
// Rendering is done by a gfx.Device. The core only hands transforms, light
// data and particle vertices to the device.
package skyrail
