package config

// Default returns the built-in tuning. Tests and headless runs use it when
// no config directory is given.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Title:        "Arena",
			ScreenWidth:  1600,
			ScreenHeight: 1200,
			TPS:          120,
		},
		Arena: ArenaConfig{
			Width:  1600,
			Height: 1200,
			Margin: 50,
		},
		Player: PlayerConfig{
			Width:          48,
			Height:         48,
			Speed:          2,
			Hearts:         6,
			HeartCap:       12,
			DamageCooldown: 240,
			BlockDuration:  20,
			DashSpeed:      20,
			DashDuration:   10,
			KnockbackDecay: 0.8,
		},
		Weapons: []WeaponConfig{
			{Name: "pistol", Speed: 50, Damage: 100, Interval: 20},
			{Name: "ak", Speed: 100, Damage: 70, Interval: 20, Auto: true},
			{Name: "shotgun", Speed: 50, Damage: 24, Interval: 56, Offsets: []float64{-10, -5, -2, 0, 2, 5, 10}},
			{Name: "awp", Speed: 120, Damage: 300, Interval: 120},
		},
		Enemies: EnemiesConfig{
			Slime: SlimeConfig{
				EnemyBase: EnemyBase{
					Width: 64, Height: 36, HP: 100, Speed: 0.5,
					Knockback: 10, KnockbackTicks: 8, CoinMin: 2, CoinMax: 4,
				},
				SlowFactor:   0.5,
				SlowDuration: 60,
				HitboxTop:    0.55,
			},
			Melee: MeleeConfig{
				EnemyBase: EnemyBase{
					Width: 64, Height: 64, HP: 120, Speed: 0.7,
					Knockback: 10, KnockbackTicks: 8, CoinMin: 3, CoinMax: 5,
				},
				TelegraphDuration:      30,
				AttackFrameTicks:       6,
				AttackFrames:           3,
				HitFrame:               1,
				RecoverDuration:        180,
				BlockedRecoverDuration: 180,
				Backstep:               10,
			},
			Archer: ArcherConfig{
				EnemyBase: EnemyBase{
					Width: 64, Height: 64, HP: 100, Speed: 0.4,
					Knockback: 8, KnockbackTicks: 6, CoinMin: 4, CoinMax: 6,
				},
				PreferDistance:    300,
				MinDistance:       240,
				ReloadTime:        150,
				LoadedDisplayTime: 20,
				ArrowSpeed:        3.5,
				SpreadDeg:         24,
				Backstep:          10,
			},
		},
		Boss: BossConfig{
			Width:     200,
			Height:    200,
			Phase1HP:  12000,
			BaseSpeed: 0.75,
			Intro: IntroConfig{
				Speed:    5,
				Hold:     240,
				StartGap: 40,
			},
			Fan: FanConfig{
				Interval:     16,
				Count:        8,
				Duration:     1200,
				Phase1Speed:  1.4,
				Phase2Speed:  1.82,
				AngleStepDeg: 10,
				ShotLife:     -1,
				LaserChance:  50,
			},
			Rest: RestConfig{
				Min:       220,
				Max:       260,
				FirstRest: 240,
			},
			Reposition: RepositionConfig{
				Offset:   60,
				MinDelay: 100,
				MaxDelay: 140,
			},
			Cues: CueConfig{
				HalfDuration:       360,
				LowDuration:        120,
				LowRatio:           0.15,
				DeathDuration:      120,
				RebirthDuration:    300,
				RebirthAudio:       600,
				PlayerLoseFollowup: 120,
			},
			Lasers: LaserConfig{
				Count:        8,
				MaxLength:    1200,
				InnerPadding: 10,
				GrowDuration: 600,
				Duration:     1200,
				RotateSpeed:  0.0008,
				HalfWidth:    14,
				Recenter:     0.12,
			},
			Contact: ContactConfig{
				Cooldown:       30,
				Knockback:      9,
				KnockbackTicks: 6,
			},
		},
		Spawner: SpawnerConfig{
			Interval:   60,
			ScreenCap:  10,
			EdgeMargin: 48,
		},
		Coins: CoinConfig{
			PullSpeed:     10,
			CollectRadius: 75,
		},
		Feedback: FeedbackConfig{
			KillMarker:  12,
			ScreenShake: 10,
			WaveBanner:  360,
		},
		Wheel: WheelConfig{
			Radius:     96,
			DeadZone:   32,
			OpenFrames: 10,
		},
		Waves: DefaultWaves(),
	}
}

// DefaultWaves returns the built-in wave table
func DefaultWaves() *WavesConfig {
	return &WavesConfig{
		BossWave:   5,
		BaseTarget: 10,
		TargetStep: 8,
		TargetCap:  200,
		Waves: []WaveEntry{
			{From: 1, Spawns: []SpawnWeight{
				{Kind: "slime", Weight: 60},
				{Kind: "melee", Weight: 40},
			}},
			{From: 2, Spawns: []SpawnWeight{
				{Kind: "slime", Weight: 55},
				{Kind: "melee", Weight: 35},
				{Kind: "archer", Weight: 10},
			}},
		},
	}
}
