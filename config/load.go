package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML file from fsys and overlays it on Default. Keys absent
// from the file keep their default values. Entries under enemy.types replace
// the default entry of the same name as a whole.
func Load(fsys fs.FS, path string) (*Config, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadFile is Load against the host filesystem.
func LoadFile(path string) (*Config, error) {
	return Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// Parse decodes YAML bytes on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	for key, t := range cfg.Enemy.Types {
		if t.Name == "" {
			t.Name = key
			cfg.Enemy.Types[key] = t
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// StrengthDamageBonus is +1 damage per 5 strength.
func (s StatsConfig) StrengthDamageBonus() int { return s.Strength / 5 }

// WeaponDamageBonus is +1 damage per 10 dexterity.
func (s StatsConfig) WeaponDamageBonus() int { return s.Dexterity / 10 }

// CriticalChanceBonus is +0.1% per point of dexterity.
func (s StatsConfig) CriticalChanceBonus() float64 { return float64(s.Dexterity) * 0.001 }

func (s StatsConfig) MaxHealth() float64 { return float64(20 + s.Vitality*2 + s.Level*2) }
func (s StatsConfig) MaxMana() float64   { return float64(10 + s.Energy*2) }
func (s StatsConfig) Defense() float64   { return float64(s.Dexterity) / 4 }

// LevelUp raises the level by one and grows the attributes.
func (s *StatsConfig) LevelUp(p ProgressionConfig) {
	s.Level++
	s.Strength += p.StrengthPerLevel
	s.Dexterity += p.DexterityPerLevel
	s.Vitality += p.VitalityPerLevel
	s.Energy += p.EnergyPerLevel
}

// WithStats returns p with max health, max mana, defense, damage and
// critical chance derived from stats. p is treated as the base values; when
// stats.Level is zero only Stats is replaced.
func (p PlayerConfig) WithStats(stats StatsConfig) PlayerConfig {
	p.Stats = stats
	if stats.Level <= 0 {
		return p
	}
	p.Vitals.MaxHealth = stats.MaxHealth()
	p.Vitals.MaxMana = stats.MaxMana()
	p.Defense = stats.Defense()
	p.Attack.CriticalChance = min(p.Attack.CriticalChance+stats.CriticalChanceBonus(), 1)
	bonus := stats.StrengthDamageBonus() + stats.WeaponDamageBonus()
	p.Attack.MinDamage += bonus
	p.Attack.MaxDamage += bonus
	return p
}

// Derived is WithStats applied to the configured attributes.
func (p PlayerConfig) Derived() PlayerConfig {
	return p.WithStats(p.Stats)
}

// Validate reports every invalid value at once.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Arena.TPS > 0, "arena.tps must be positive, got %d", c.Arena.TPS)
	check(c.Arena.Width > 0 && c.Arena.Height > 0, "arena size must be positive, got %dx%d", c.Arena.Width, c.Arena.Height)
	check(c.Arena.CellSize > 0, "arena.cell_size must be positive, got %d", c.Arena.CellSize)
	check(c.Audio.SampleRate > 0, "audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	check(c.Audio.SFXVolume >= 0 && c.Audio.SFXVolume <= 1, "audio.sfx_volume must be within [0,1], got %v", c.Audio.SFXVolume)
	check(c.Arena.ImpulseDecay >= 0, "arena.impulse_decay must not be negative, got %v", c.Arena.ImpulseDecay)

	errs = append(errs, c.Player.Vitals.validate("player.vitals")...)
	errs = append(errs, c.Player.Attack.validate("player.attack")...)
	errs = append(errs, c.Player.Movement.validate("player.movement")...)

	sh := c.Player.Shield
	check(sh.MaxStamina > 0, "player.shield.max_stamina must be positive")
	check(sh.MinStaminaToRaise >= 0 && sh.MinStaminaToRaise <= sh.MaxStamina,
		"player.shield.min_stamina_to_raise must be within [0,%g], got %g", sh.MaxStamina, sh.MinStaminaToRaise)
	check(sh.DrainPerSecond >= 0 && sh.RegenPerSecond >= 0, "player.shield drain and regen must not be negative")
	check(sh.RaiseDuration >= 0 && sh.HoldDuration >= 0 && sh.ReraiseDelay >= 0, "player.shield durations must not be negative")

	pr := c.Player.Progression
	check(pr.ExperienceToNextLevel > 0, "player.progression.experience_to_next_level must be positive, got %d", pr.ExperienceToNextLevel)
	check(pr.Growth >= 1, "player.progression.growth must be at least 1, got %g", pr.Growth)
	check(c.Arena.TeleportDelay >= 0 && c.Arena.TeleportLockout >= 0, "arena teleport delay and lockout must not be negative")

	r := c.Player.Roll
	check(r.Duration > 0, "player.roll.duration must be positive, got %g", r.Duration)
	check(r.Cooldown >= 0, "player.roll.cooldown must not be negative")
	check(r.InvincibilityDuration >= 0 && r.InvincibilityDuration <= r.Duration,
		"player.roll.invincibility_duration must be within [0,%g], got %g", r.Duration, r.InvincibilityDuration)

	check(len(c.Enemy.Types) > 0, "enemy.types must not be empty")
	_, ok := c.Enemy.Types[c.Enemy.DefaultType]
	check(ok, "enemy.default_type %q is not a known type", c.Enemy.DefaultType)
	for key, t := range c.Enemy.Types {
		prefix := "enemy.types." + key
		errs = append(errs, t.Vitals.validate(prefix+".vitals")...)
		errs = append(errs, t.Attack.validate(prefix+".attack")...)
		errs = append(errs, t.Movement.validate(prefix+".movement")...)
		check(t.Perception.AttackRange <= t.Perception.DetectionRange,
			"%s.perception.attack_range %g exceeds detection_range %g", prefix, t.Perception.AttackRange, t.Perception.DetectionRange)
	}

	return errors.Join(errs...)
}

func (v VitalsConfig) validate(prefix string) []error {
	var errs []error
	if v.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("%s.max_health must be positive, got %g", prefix, v.MaxHealth))
	}
	if v.MaxMana < 0 || v.HurtStun < 0 {
		errs = append(errs, fmt.Errorf("%s: max_mana and hurt_stun must not be negative", prefix))
	}
	if v.Regenerate && v.RegenInterval <= 0 {
		errs = append(errs, fmt.Errorf("%s.regen_interval must be positive when regenerate is set", prefix))
	}
	return errs
}

func (a AttackConfig) validate(prefix string) []error {
	var errs []error
	if a.Windup < 0 || a.Telegraph < 0 || a.DamageWindow < 0 || a.Recovery < 0 || a.Cooldown < 0 {
		errs = append(errs, fmt.Errorf("%s: phase durations must not be negative", prefix))
	}
	if a.MinDamage < 0 || a.MaxDamage < a.MinDamage {
		errs = append(errs, fmt.Errorf("%s: damage range [%d,%d] is invalid", prefix, a.MinDamage, a.MaxDamage))
	}
	if a.CriticalChance < 0 || a.CriticalChance > 1 {
		errs = append(errs, fmt.Errorf("%s.critical_chance must be within [0,1], got %g", prefix, a.CriticalChance))
	}
	if a.CriticalMultiplier < 1 {
		errs = append(errs, fmt.Errorf("%s.critical_multiplier must be at least 1, got %g", prefix, a.CriticalMultiplier))
	}
	if a.HitRadius <= 0 {
		errs = append(errs, fmt.Errorf("%s.hit_radius must be positive, got %g", prefix, a.HitRadius))
	}
	if a.ConeHalfAngle < 0 || a.ConeHalfAngle > 180 {
		errs = append(errs, fmt.Errorf("%s.cone_half_angle must be within [0,180], got %g", prefix, a.ConeHalfAngle))
	}
	if a.MaxTargets < 0 {
		errs = append(errs, fmt.Errorf("%s.max_targets must not be negative", prefix))
	}
	if a.BlockPushback < 0 || a.Knockback < 0 {
		errs = append(errs, fmt.Errorf("%s: block_pushback and knockback must not be negative", prefix))
	}
	return errs
}

func (m MovementConfig) validate(prefix string) []error {
	if m.MoveSpeed < 0 || m.Acceleration <= 0 || m.Deceleration <= 0 || m.Radius <= 0 {
		return []error{fmt.Errorf("%s: speed must not be negative; acceleration, deceleration and radius must be positive", prefix)}
	}
	return nil
}
