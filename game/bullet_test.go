package game

import (
	"math"
	"testing"
)

func TestBulletKeepsLaunchAngle(t *testing.T) {
	p, _, _ := newTestPlayer()
	p.Angle = 90

	b := p.Shoot()
	p.Angle = 0 // turning after firing must not steer the bullet

	for i := 0; i < 10; i++ {
		b.Update()
	}

	if math.Abs(b.X-320) > epsilon {
		t.Errorf("bullet drifted sideways to x=%v", b.X)
	}
	if b.Y <= 240 {
		t.Errorf("bullet at heading 90 should travel down the screen, y=%v", b.Y)
	}
}

func TestBulletUpdateAcceleratesThenMoves(t *testing.T) {
	config := DefaultConfig()
	b := NewBullet(0, config.Bullet, config.Playfield())
	b.Warp(100, 100)

	b.Update()

	// The first impulse is applied before integrating, so the bullet moves
	// on its first update.
	if math.Abs(b.X-100.45) > epsilon || math.Abs(b.Y-100) > epsilon {
		t.Errorf("position after one update = (%v,%v), want (100.45,100)", b.X, b.Y)
	}
	if math.Abs(b.VX-0.45*0.95) > epsilon {
		t.Errorf("velocity after one update = %v, want %v", b.VX, 0.45*0.95)
	}
}

func TestBulletApproachesTerminalSpeed(t *testing.T) {
	config := DefaultConfig()
	b := NewBullet(45, config.Bullet, config.Playfield())

	for i := 0; i < 1000; i++ {
		b.Update()
	}

	// v = (v + impulse) * damping converges to impulse*damping/(1-damping)
	want := config.Bullet.Impulse * config.Bullet.Damping / (1 - config.Bullet.Damping)
	if math.Abs(b.Speed()-want) > 1e-6 {
		t.Errorf("terminal speed = %v, want %v", b.Speed(), want)
	}
	if b.X < 0 || b.X >= 640 || b.Y < 0 || b.Y >= 480 {
		t.Errorf("bullet left the playfield: (%v,%v)", b.X, b.Y)
	}
}
