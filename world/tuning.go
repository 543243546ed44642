package world

const (
	PlayerSpeed      = 10.0
	PlayerBoostSpeed = 20.0
	PlayerSize       = 60.0
	HyperDuration    = 500
	HyperCost        = 100

	EnemySpeed         = 6.0
	EnemySize          = 56.0
	EnemySpawnInterval = 200
	EnemyMinHold       = 50
	EnemyMinInterval   = 50
	EnemyMaxInterval   = 300
	EnemyLooks         = 3
	EnemyKillScore     = 10

	BombSpeed     = 6.0
	BombMinRadius = 10
	BombMaxRadius = 50
	BombColors    = 6
	BombKillScore = 1

	BeamSpeed       = 10.0
	BeamSize        = 30.0
	VolleyCount     = 5
	VolleySpreadDeg = 100.0

	ExplosionSize      = 80.0
	EnemyExplosionLife = 100
	BombExplosionLife  = 50

	GravityLife = 400
	GravityCost = 200
)
