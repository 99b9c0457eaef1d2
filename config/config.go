package config

// VitalsConfig contains hit point, mana and hurt-stun tuning
type VitalsConfig struct {
	MaxHealth     float64 `yaml:"max_health"`
	MaxMana       float64 `yaml:"max_mana"`
	HurtStun      float64 `yaml:"hurt_stun"`      // seconds of input lock after a non-lethal hit
	Regenerate    bool    `yaml:"regenerate"`     // periodic health and mana regen
	RegenAmount   float64 `yaml:"regen_amount"`   // restored per regen tick
	RegenInterval float64 `yaml:"regen_interval"` // seconds between regen ticks
	GodMode       bool    `yaml:"god_mode"`       // reject all damage, refill on regen tick
}

// AttackConfig contains the timing and damage values of one melee swing
type AttackConfig struct {
	// Phase durations (seconds)
	Windup       float64 `yaml:"windup"`
	Telegraph    float64 `yaml:"telegraph"`
	DamageWindow float64 `yaml:"damage_window"`
	Recovery     float64 `yaml:"recovery"`
	Cooldown     float64 `yaml:"cooldown"` // measured from swing start

	// Damage roll
	MinDamage          int     `yaml:"min_damage"`
	MaxDamage          int     `yaml:"max_damage"`
	AttackRating       float64 `yaml:"attack_rating"`
	CriticalChance     float64 `yaml:"critical_chance"`     // 0..1
	CriticalMultiplier float64 `yaml:"critical_multiplier"` // applied to rolled damage

	// Hit area
	TelegraphDistance float64 `yaml:"telegraph_distance"` // marker offset along the swing direction
	HitRadius         float64 `yaml:"hit_radius"`
	ConeHalfAngle     float64 `yaml:"cone_half_angle"` // degrees; 0 = circle around the marker
	MaxTargets        int     `yaml:"max_targets"`     // per swing; 0 = unlimited

	// Shield interaction
	Blockable     bool    `yaml:"blockable"`
	StaminaDamage float64 `yaml:"stamina_damage"` // applied to a blocking shield
	BlockPushback float64 `yaml:"block_pushback"` // knockback speed given to the attacker on block
	Knockback     float64 `yaml:"knockback"`      // knockback speed given to a struck target
}

// TotalDuration returns the length of one full swing.
func (a AttackConfig) TotalDuration() float64 {
	return a.Windup + a.Telegraph + a.DamageWindow + a.Recovery
}

// MovementConfig contains top-down locomotion values
type MovementConfig struct {
	MoveSpeed    float64 `yaml:"move_speed"`   // pixels per second
	Acceleration float64 `yaml:"acceleration"` // pixels per second squared
	Deceleration float64 `yaml:"deceleration"`
	Radius       float64 `yaml:"radius"` // collision half-size
}

// ShieldConfig contains player shield values
type ShieldConfig struct {
	MaxStamina          float64 `yaml:"max_stamina"`
	MinStaminaToRaise   float64 `yaml:"min_stamina_to_raise"`
	DrainPerSecond      float64 `yaml:"drain_per_second"`
	RegenPerSecond      float64 `yaml:"regen_per_second"`
	RaiseDuration       float64 `yaml:"raise_duration"`
	HoldDuration        float64 `yaml:"hold_duration"` // 0 = hold while the button is down
	DirectionSmoothTime float64 `yaml:"direction_smooth_time"`
	DeadZone            float64 `yaml:"dead_zone"`
	ReraiseDelay        float64 `yaml:"reraise_delay"` // anti-spam delay after raise/lower
	MoveFactor          float64 `yaml:"move_factor"`   // movement speed multiplier while shielding
}

// RollConfig contains dodge roll values
type RollConfig struct {
	Speed                 float64 `yaml:"speed"`
	Duration              float64 `yaml:"duration"`
	Cooldown              float64 `yaml:"cooldown"`
	InvincibilityDuration float64 `yaml:"invincibility_duration"` // from roll start
}

// PerceptionConfig contains enemy sensing ranges
type PerceptionConfig struct {
	DetectionRange   float64 `yaml:"detection_range"`
	AttackRange      float64 `yaml:"attack_range"`
	StoppingDistance float64 `yaml:"stopping_distance"`
}

// StatsConfig contains the optional RPG attributes of the player. When
// Level is zero the attributes are ignored.
type StatsConfig struct {
	Level     int `yaml:"level"`
	Strength  int `yaml:"strength"`
	Dexterity int `yaml:"dexterity"`
	Vitality  int `yaml:"vitality"`
	Energy    int `yaml:"energy"`
}

// ProgressionConfig contains experience and level-up growth values
type ProgressionConfig struct {
	ExperienceToNextLevel int     `yaml:"experience_to_next_level"`
	Growth                float64 `yaml:"growth"` // experienceToNextLevel multiplier per level
	StrengthPerLevel      int     `yaml:"strength_per_level"`
	DexterityPerLevel     int     `yaml:"dexterity_per_level"`
	VitalityPerLevel      int     `yaml:"vitality_per_level"`
	EnergyPerLevel        int     `yaml:"energy_per_level"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Vitals   VitalsConfig   `yaml:"vitals"`
	Movement MovementConfig `yaml:"movement"`
	Attack   AttackConfig   `yaml:"attack"`
	Shield   ShieldConfig   `yaml:"shield"`
	Roll     RollConfig     `yaml:"roll"`
	Defense  float64        `yaml:"defense"`
	Stats    StatsConfig    `yaml:"stats"`

	Progression ProgressionConfig `yaml:"progression"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name       string           `yaml:"name"`
	Vitals     VitalsConfig     `yaml:"vitals"`
	Movement   MovementConfig   `yaml:"movement"`
	Attack     AttackConfig     `yaml:"attack"`
	Perception PerceptionConfig `yaml:"perception"`
	Defense    float64          `yaml:"defense"`
	Experience int              `yaml:"experience"` // awarded to the player on death

	// Death
	DeathAnimation float64 `yaml:"death_animation"` // seconds before the corpse fades
	CorpseDuration float64 `yaml:"corpse_duration"` // seconds the corpse lingers afterwards
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types       map[string]EnemyTypeConfig `yaml:"types"`
	DefaultType string                     `yaml:"default_type"`
}

// Type returns the named enemy type, falling back to the default type.
func (e EnemyConfig) Type(name string) EnemyTypeConfig {
	if t, ok := e.Types[name]; ok {
		return t
	}
	return e.Types[e.DefaultType]
}

// EffectsConfig contains damage popup values
type EffectsConfig struct {
	PopupLifetime float64 `yaml:"popup_lifetime"` // seconds before fading starts
	PopupFade     float64 `yaml:"popup_fade"`     // seconds to fade out
	PopupRise     float64 `yaml:"popup_rise"`     // pixels travelled upward
	HurtFlash     float64 `yaml:"hurt_flash"`     // seconds
	BlockFlash    float64 `yaml:"block_flash"`    // seconds the blocker flashes
}

// ArenaConfig holds general game configuration
type ArenaConfig struct {
	Width            int     `yaml:"width"`
	Height           int     `yaml:"height"`
	TPS              int     `yaml:"tps"`
	Level            string  `yaml:"level"`
	CellSize         int     `yaml:"cell_size"`
	PlayerRespawn    float64 `yaml:"player_respawn"` // seconds after death before respawn is allowed
	Seed             uint64  `yaml:"seed"`           // 0 = random
	LineOfSightStep  float64 `yaml:"line_of_sight_step"`
	LineOfSightWidth float64 `yaml:"line_of_sight_width"`
	ImpulseDecay     float64 `yaml:"impulse_decay"`    // knockback deceleration, units/s²
	TeleportDelay    float64 `yaml:"teleport_delay"`   // seconds an actor is frozen on an entry pad
	TeleportLockout  float64 `yaml:"teleport_lockout"` // seconds an exit pad ignores arrivals
}

// Config is the full tuning surface, supplied to actors at construction.
type Config struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Effects EffectsConfig `yaml:"effects"`
	Audio   AudioConfig   `yaml:"audio"`
}

// Default returns the tuned configuration.
func Default() *Config {
	grunt := EnemyTypeConfig{
		Name: "Grunt",
		Vitals: VitalsConfig{
			MaxHealth: 100,
			HurtStun:  0.25,
		},
		Movement: MovementConfig{
			MoveSpeed:    64,
			Acceleration: 800,
			Deceleration: 800,
			Radius:       10,
		},
		Attack: AttackConfig{
			Windup:             0.3,
			Telegraph:          0.6,
			DamageWindow:       0.2,
			Recovery:           0.5,
			Cooldown:           2.0,
			MinDamage:          20,
			MaxDamage:          30,
			AttackRating:       100,
			CriticalChance:     0.05,
			CriticalMultiplier: 2.0,
			TelegraphDistance:  22,
			HitRadius:          16,
			MaxTargets:         1,
			Blockable:          true,
			StaminaDamage:      15,
			BlockPushback:      160,
			Knockback:          90,
		},
		Perception: PerceptionConfig{
			DetectionRange:   160,
			AttackRange:      48,
			StoppingDistance: 38,
		},
		Defense:        5,
		Experience:     25,
		DeathAnimation: 2,
		CorpseDuration: 5,
	}

	brute := grunt
	brute.Name = "Brute"
	brute.Vitals.MaxHealth = 180
	brute.Vitals.HurtStun = 0.15
	brute.Movement.MoveSpeed = 44
	brute.Attack.Windup = 0.5
	brute.Attack.Telegraph = 0.8
	brute.Attack.Cooldown = 3.0
	brute.Attack.MinDamage = 35
	brute.Attack.MaxDamage = 45
	brute.Attack.HitRadius = 22
	brute.Attack.TelegraphDistance = 28
	brute.Attack.StaminaDamage = 30
	brute.Attack.BlockPushback = 80
	brute.Perception.AttackRange = 56
	brute.Perception.StoppingDistance = 44
	brute.Defense = 15
	brute.Experience = 60
	brute.Attack.Knockback = 160

	skirmisher := grunt
	skirmisher.Name = "Skirmisher"
	skirmisher.Vitals.MaxHealth = 60
	skirmisher.Vitals.HurtStun = 0.35
	skirmisher.Movement.MoveSpeed = 96
	skirmisher.Attack.Windup = 0.2
	skirmisher.Attack.Telegraph = 0.4
	skirmisher.Attack.Recovery = 0.3
	skirmisher.Attack.Cooldown = 1.4
	skirmisher.Attack.MinDamage = 10
	skirmisher.Attack.MaxDamage = 16
	skirmisher.Attack.CriticalChance = 0.15
	skirmisher.Perception.DetectionRange = 200
	skirmisher.Defense = 2
	skirmisher.Experience = 20

	return &Config{
		Arena: ArenaConfig{
			Width:            640,
			Height:           352,
			TPS:              60,
			Level:            "levels/arena.tmx",
			CellSize:         16,
			PlayerRespawn:    3,
			LineOfSightStep:  4,
			LineOfSightWidth: 2,
			ImpulseDecay:     640,
			TeleportDelay:    0.1,
			TeleportLockout:  0.5,
		},
		Player: PlayerConfig{
			Vitals: VitalsConfig{
				MaxHealth:     100,
				MaxMana:       100,
				HurtStun:      0.4,
				Regenerate:    true,
				RegenAmount:   0.1,
				RegenInterval: 1,
			},
			Movement: MovementConfig{
				MoveSpeed:    160,
				Acceleration: 1600,
				Deceleration: 1600,
				Radius:       10,
			},
			Attack: AttackConfig{
				Windup:             0.1,
				Telegraph:          0.05,
				DamageWindow:       0.15,
				Recovery:           0.2,
				Cooldown:           0.6,
				MinDamage:          18,
				MaxDamage:          26,
				AttackRating:       100,
				CriticalChance:     0.1,
				CriticalMultiplier: 2.0,
				TelegraphDistance:  18,
				HitRadius:          34,
				ConeHalfAngle:      60,
				MaxTargets:         3,
				Knockback:          120,
			},
			Shield: ShieldConfig{
				MaxStamina:          100,
				MinStaminaToRaise:   10,
				DrainPerSecond:      5,
				RegenPerSecond:      8,
				RaiseDuration:       0.5,
				HoldDuration:        0,
				DirectionSmoothTime: 0.1,
				DeadZone:            0.1,
				ReraiseDelay:        0.1,
				MoveFactor:          0.35,
			},
			Roll: RollConfig{
				Speed:                 320,
				Duration:              0.35,
				Cooldown:              0.8,
				InvincibilityDuration: 0.25,
			},
			Defense: 10,
			Progression: ProgressionConfig{
				ExperienceToNextLevel: 100,
				Growth:                1.1,
				StrengthPerLevel:      2,
				DexterityPerLevel:     2,
				VitalityPerLevel:      2,
				EnergyPerLevel:        1,
			},
		},
		Enemy: EnemyConfig{
			Types: map[string]EnemyTypeConfig{
				"grunt":      grunt,
				"brute":      brute,
				"skirmisher": skirmisher,
			},
			DefaultType: "grunt",
		},
		Effects: EffectsConfig{
			PopupLifetime: 1,
			PopupFade:     0.33,
			PopupRise:     24,
			HurtFlash:     0.12,
			BlockFlash:    0.3,
		},
		Audio: DefaultAudio(),
	}
}
