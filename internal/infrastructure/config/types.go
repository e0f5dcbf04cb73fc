package config

// Config is the root config for arena.json. Waves is filled from waves.yaml.
type Config struct {
	Display  DisplayConfig  `json:"display"`
	Arena    ArenaConfig    `json:"arena"`
	Player   PlayerConfig   `json:"player"`
	Weapons  []WeaponConfig `json:"weapons"`
	Enemies  EnemiesConfig  `json:"enemies"`
	Boss     BossConfig     `json:"boss"`
	Spawner  SpawnerConfig  `json:"spawner"`
	Coins    CoinConfig     `json:"coins"`
	Feedback FeedbackConfig `json:"feedback"`
	Wheel    WheelConfig    `json:"wheel"`

	Waves *WavesConfig `json:"-"`
}

type DisplayConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	TPS          int    `json:"tps"`
}

// ArenaConfig is the logical playfield size. Projectiles leave it by Margin.
type ArenaConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Margin float64 `json:"margin"`
}

type PlayerConfig struct {
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	Speed          float64 `json:"speed"`
	Hearts         int     `json:"hearts"`
	HeartCap       int     `json:"heartCap"`       // max hearts after boss retries
	DamageCooldown int     `json:"damageCooldown"` // ticks
	BlockDuration  int     `json:"blockDuration"`  // ticks
	DashSpeed      float64 `json:"dashSpeed"`
	DashDuration   int     `json:"dashDuration"`
	KnockbackDecay float64 `json:"knockbackDecay"`
}

// WeaponConfig describes one weapon slot. Offsets are pellet angles in
// degrees relative to the aim direction; empty means a single bullet.
type WeaponConfig struct {
	Name     string    `json:"name"`
	Speed    float64   `json:"speed"`
	Damage   int       `json:"damage"`
	Interval int       `json:"interval"` // ticks between shots
	Auto     bool      `json:"auto"`
	Piercing bool      `json:"piercing"`
	Offsets  []float64 `json:"offsets,omitempty"`
}

type EnemiesConfig struct {
	Slime  SlimeConfig  `json:"slime"`
	Melee  MeleeConfig  `json:"melee"`
	Archer ArcherConfig `json:"archer"`
}

// EnemyBase holds the fields every enemy kind shares
type EnemyBase struct {
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	HP             int     `json:"hp"`
	Speed          float64 `json:"speed"`
	Knockback      float64 `json:"knockback"`
	KnockbackTicks int     `json:"knockbackTicks"`
	CoinMin        int     `json:"coinMin"`
	CoinMax        int     `json:"coinMax"`
}

type SlimeConfig struct {
	EnemyBase
	SlowFactor   float64 `json:"slowFactor"`
	SlowDuration int     `json:"slowDuration"`

	// HitboxTop is the fraction of the height above the damaging area
	HitboxTop float64 `json:"hitboxTop"`
}

type MeleeConfig struct {
	EnemyBase
	TelegraphDuration      int     `json:"telegraphDuration"`
	AttackFrameTicks       int     `json:"attackFrameTicks"`
	AttackFrames           int     `json:"attackFrames"`
	HitFrame               int     `json:"hitFrame"`
	RecoverDuration        int     `json:"recoverDuration"`
	BlockedRecoverDuration int     `json:"blockedRecoverDuration"`
	Backstep               float64 `json:"backstep"`
}

type ArcherConfig struct {
	EnemyBase
	PreferDistance    float64 `json:"preferDistance"`
	MinDistance       float64 `json:"minDistance"`
	ReloadTime        int     `json:"reloadTime"`
	LoadedDisplayTime int     `json:"loadedDisplayTime"`
	ArrowSpeed        float64 `json:"arrowSpeed"`
	SpreadDeg         float64 `json:"spreadDeg"`
	Backstep          float64 `json:"backstep"`
}

type BossConfig struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Phase1HP  int     `json:"phase1HP"`
	BaseSpeed float64 `json:"baseSpeed"`

	Intro      IntroConfig      `json:"intro"`
	Fan        FanConfig        `json:"fan"`
	Rest       RestConfig       `json:"rest"`
	Reposition RepositionConfig `json:"reposition"`
	Cues       CueConfig        `json:"cues"`
	Lasers     LaserConfig      `json:"lasers"`
	Contact    ContactConfig    `json:"contact"`
}

// Phase2HP is the phase-two ceiling, always 1.5x the phase-one ceiling
func (b BossConfig) Phase2HP() int {
	return b.Phase1HP * 3 / 2
}

type IntroConfig struct {
	Speed    float64 `json:"speed"`
	Hold     int     `json:"hold"`
	StartGap float64 `json:"startGap"` // distance above the arena top edge
}

type FanConfig struct {
	Interval     int     `json:"interval"`
	Count        int     `json:"count"`
	Duration     int     `json:"duration"`
	Phase1Speed  float64 `json:"phase1Speed"`
	Phase2Speed  float64 `json:"phase2Speed"`
	AngleStepDeg float64 `json:"angleStepDeg"`

	// ShotLife -1 keeps a shot alive until it leaves the arena
	ShotLife int `json:"shotLife"`

	// LaserChance is the percent chance a phase-two fan ends in lasers
	LaserChance int `json:"laserChance"`
}

type RestConfig struct {
	Min       int `json:"min"`
	Max       int `json:"max"`
	FirstRest int `json:"firstRest"`
}

type RepositionConfig struct {
	Offset   float64 `json:"offset"`
	MinDelay int     `json:"minDelay"`
	MaxDelay int     `json:"maxDelay"`
}

type CueConfig struct {
	HalfDuration       int     `json:"halfDuration"`
	LowDuration        int     `json:"lowDuration"`
	LowRatio           float64 `json:"lowRatio"`
	DeathDuration      int     `json:"deathDuration"`
	RebirthDuration    int     `json:"rebirthDuration"`
	RebirthAudio       int     `json:"rebirthAudio"`
	PlayerLoseFollowup int     `json:"playerLoseFollowup"`
}

type LaserConfig struct {
	Count        int     `json:"count"`
	MaxLength    float64 `json:"maxLength"`
	InnerPadding float64 `json:"innerPadding"`
	GrowDuration int     `json:"growDuration"`
	Duration     int     `json:"duration"`
	RotateSpeed  float64 `json:"rotateSpeed"` // radians per tick
	HalfWidth    float64 `json:"halfWidth"`
	Recenter     float64 `json:"recenter"` // fraction of remaining distance per tick
}

type ContactConfig struct {
	Cooldown       int     `json:"cooldown"`
	Knockback      float64 `json:"knockback"`
	KnockbackTicks int     `json:"knockbackTicks"`
}

type SpawnerConfig struct {
	Interval   int     `json:"interval"`
	ScreenCap  int     `json:"screenCap"`
	EdgeMargin float64 `json:"edgeMargin"`
}

type CoinConfig struct {
	PullSpeed     float64 `json:"pullSpeed"`
	CollectRadius float64 `json:"collectRadius"`
}

type FeedbackConfig struct {
	KillMarker  int `json:"killMarker"`
	ScreenShake int `json:"screenShake"`
	WaveBanner  int `json:"waveBanner"`
}

// WheelConfig configures the weapon wheel UI
type WheelConfig struct {
	Radius     int `json:"radius"`     // icon distance from center (pixels)
	DeadZone   int `json:"deadZone"`   // minimum cursor travel for a selection (pixels)
	OpenFrames int `json:"openFrames"` // animation duration (frames)
}
