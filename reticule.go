package skyrail

import (
	"math"
	"weak"

	"github.com/oliverbestmann/skyrail/gametime"
	"github.com/oliverbestmann/skyrail/gfx"
	"github.com/oliverbestmann/skyrail/gm"
)

// Aim describes the envelope a bullet fired by the player sweeps through.
type Aim struct {
	// maximum travel distance of a bullet
	Range float64

	BulletRadius float64

	// scales the squared target radius in the lateral test
	TargetRadiusFactor float64
}

// Select returns the point the reticule is placed at for a player at origin.
//
// A target qualifies if it is active, lies between origin and origin + Range
// along Z, and its lateral squared distance to the line of fire is at most
// BulletRadius² + TargetRadiusFactor·radius². The result is the near edge of
// the qualifying target with the smallest z, together with that target.
// Without a qualifying target the result is the point at maximum range and
// a nil target.
func Select[B Behavior](origin gm.Vec3, targets []B, aim Aim) (gm.Vec3, *Entity) {
	maxZ := origin.Z + aim.Range
	bulletRadiusSq := aim.BulletRadius * aim.BulletRadius

	var nearest *Entity
	nearestZ := math.Inf(1)

	for _, candidate := range targets {
		target := candidate.Base()
		if !target.IsActive() {
			continue
		}

		pos := target.Position()

		// too far away or behind the player
		if pos.Z > maxZ || pos.Z < origin.Z {
			continue
		}

		dx := pos.X - origin.X
		dy := pos.Y - origin.Y
		radius := target.Radius()

		if dx*dx+dy*dy > bulletRadiusSq+aim.TargetRadiusFactor*radius*radius {
			continue
		}

		if pos.Z < nearestZ {
			nearest = target
			nearestZ = pos.Z
		}
	}

	if nearest == nil {
		return origin.WithZ(maxZ), nil
	}

	return origin.WithZ(nearestZ - nearest.Radius()), nearest
}

// Reticule marks the point a bullet fired now would hit first. It is
// recomputed from scratch every frame, no target is locked across frames.
type Reticule struct {
	Entity

	aim Aim

	player  weak.Pointer[Player]
	targets weak.Pointer[TargetManager]
}

var _ Behavior = (*Reticule)(nil)

func NewReticule(mesh gfx.Mesh, material gfx.Material, aim Aim, player *Player, targets *TargetManager) *Reticule {
	r := &Reticule{
		Entity:  newEntity(mesh, material),
		aim:     aim,
		player:  weak.Make(player),
		targets: weak.Make(targets),
	}

	// face the player
	r.SetRotation(gm.EulerOf(0, math.Pi, 0))

	return r
}

func (r *Reticule) Kind() Kind {
	return KindReticule
}

func (r *Reticule) Update(gametime.VirtualTime) {
	if !r.IsActive() {
		return
	}

	player := r.player.Value()
	if player == nil {
		return
	}

	var targets []*Target
	if manager := r.targets.Value(); manager != nil {
		targets = manager.Targets()
	}

	position, _ := Select(player.Position(), targets, r.aim)
	r.SetPosition(position)
}

// Draw draws the reticule in the translucent pass.
func (r *Reticule) Draw(dc DrawContext) {
	if !r.IsActive() {
		return
	}

	r.drawMesh(dc, gfx.PassTranslucent)
}
