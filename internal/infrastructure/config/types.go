package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display    DisplayConfig   `yaml:"display"`
	Player     PlayerConfig    `yaml:"player"`
	Bullet     BulletConfig    `yaml:"bullet"`
	Enemy      EnemyConfig     `yaml:"enemy"`
	Boss       BossConfig      `yaml:"boss"`
	BossBullet BulletConfig    `yaml:"bossBullet"`
	Explosion  ExplosionConfig `yaml:"explosion"`
	Rules      RulesConfig     `yaml:"rules"`
	Feedback   FeedbackConfig  `yaml:"feedback"`
}

// DisplayConfig describes the logical canvas
type DisplayConfig struct {
	CanvasWidth  int `yaml:"canvasWidth"`
	CanvasHeight int `yaml:"canvasHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerConfig struct {
	Size  SizeConfig `yaml:"size"`
	Speed float64    `yaml:"speed"`
	// SpawnOffsetY is the distance from the bottom edge to the spawn y
	SpawnOffsetY float64 `yaml:"spawnOffsetY"`
}

type BulletConfig struct {
	Size  SizeConfig `yaml:"size"`
	Speed float64    `yaml:"speed"`
	// MinGap is the vertical distance the last bullet must travel
	// above the player before another one can be fired
	MinGap float64 `yaml:"minGap,omitempty"`
}

type EnemyConfig struct {
	Size        SizeConfig `yaml:"size"`
	Speed       float64    `yaml:"speed"`
	SpawnY      float64    `yaml:"spawnY"`
	SpawnChance float64    `yaml:"spawnChance"` // per frame
}

type BossConfig struct {
	Size          SizeConfig `yaml:"size"`
	Speed         float64    `yaml:"speed"`
	SpawnY        float64    `yaml:"spawnY"`
	EntrySpeed    float64    `yaml:"entrySpeed"`
	PatrolY       float64    `yaml:"patrolY"`
	HitsToDestroy int        `yaml:"hitsToDestroy"`
	RemovalFrames int        `yaml:"removalFrames"`
	FireChance    float64    `yaml:"fireChance"` // per frame
	FirstScore    int        `yaml:"firstScore"`
	ScoreStep     int        `yaml:"scoreStep"`
}

type ExplosionConfig struct {
	Size   SizeConfig `yaml:"size"`
	Frames int        `yaml:"frames"`
}

type RulesConfig struct {
	ScorePerEnemy      int `yaml:"scorePerEnemy"`
	MaxMissed          int `yaml:"maxMissed"`
	RestartDelayFrames int `yaml:"restartDelayFrames"`
}

type FeedbackConfig struct {
	ScreenShake ScreenShakeConfig `yaml:"screenShake"`
	Sound       SoundConfig       `yaml:"sound"`
}

type ScreenShakeConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Intensity float64 `yaml:"intensity"`
	Decay     float64 `yaml:"decay"`
}

type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Default returns the built-in configuration
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{CanvasWidth: 800, CanvasHeight: 600, Scale: 1, Framerate: 60},
		Player: PlayerConfig{
			Size:         SizeConfig{Width: 75, Height: 75},
			Speed:        5,
			SpawnOffsetY: 75,
		},
		Bullet: BulletConfig{
			Size:   SizeConfig{Width: 20, Height: 40},
			Speed:  7,
			MinGap: 50,
		},
		Enemy: EnemyConfig{
			Size:        SizeConfig{Width: 50, Height: 50},
			Speed:       2,
			SpawnY:      -30,
			SpawnChance: 0.02,
		},
		Boss: BossConfig{
			Size:          SizeConfig{Width: 150, Height: 120},
			Speed:         3,
			SpawnY:        -150,
			EntrySpeed:    2,
			PatrolY:       50,
			HitsToDestroy: 10,
			RemovalFrames: 6,
			FireChance:    0.02,
			FirstScore:    100,
			ScoreStep:     100,
		},
		BossBullet: BulletConfig{
			Size:  SizeConfig{Width: 40, Height: 80},
			Speed: 5,
		},
		Explosion: ExplosionConfig{
			Size:   SizeConfig{Width: 150, Height: 150},
			Frames: 30,
		},
		Rules: RulesConfig{
			ScorePerEnemy:      10,
			MaxMissed:          10,
			RestartDelayFrames: 180,
		},
		Feedback: FeedbackConfig{
			ScreenShake: ScreenShakeConfig{Enabled: true, Intensity: 6, Decay: 0.85},
			Sound:       SoundConfig{Enabled: true, Volume: 0.3},
		},
	}
}
