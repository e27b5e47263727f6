package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/reelworks/reelpipe/ent"
	"github.com/reelworks/reelpipe/pkg/driver"
	"github.com/reelworks/reelpipe/pkg/ledger"
	"github.com/reelworks/reelpipe/pkg/models"
	"github.com/reelworks/reelpipe/pkg/workspace"
)

// configError marks failures no retry can fix: missing configuration,
// missing required inputs, unusable credentials.
type configError struct {
	msg string
}

func (e *configError) Error() string { return e.msg }

func permanentf(format string, args ...any) error {
	return &configError{msg: fmt.Sprintf(format, args...)}
}

// runStage produces every outstanding unit of one stage, persisting the
// ledger after each unit so a crash or release loses at most the unit in
// flight. Disk is reconciled before and after: already-present outputs
// are skipped, and completion is only recorded once every file verifies.
func (o *Orchestrator) runStage(ctx context.Context, t *ent.Task, ch *ent.Channel, stage models.Stage, drain func() bool) error {
	project, err := o.layout.Project(t.ChannelID, t.ID)
	if err != nil {
		return permanentf("resolving project workspace: %v", err)
	}
	if err := project.EnsureDirs(); err != nil {
		return fmt.Errorf("preparing project workspace: %w", err)
	}

	counts := ledger.Counts{Assets: t.AssetCount, Clips: t.ClipCount}

	env, err := o.credentialEnv(ch)
	if err != nil {
		// Generic on purpose: no ciphertext or key detail in errors.
		return permanentf("channel %s credentials unavailable: %v", ch.ID, err)
	}

	steps, err := o.tasks.Ledger(ctx, t.ID)
	if err != nil {
		return fmt.Errorf("loading ledger: %w", err)
	}

	if stage == models.StageAudio {
		if repair := steps.Step(models.StageAudio).FailedAudioClipNumbers; !repair.Empty() {
			return o.runAudioRepair(ctx, t, ch, project, env, repair, drain)
		}
	}
	if stage == models.StageAssembly {
		return o.runAssembly(ctx, t, ch, project, steps, env, drain)
	}

	pending, err := ledger.Outstanding(project, stage, counts, steps)
	if err != nil {
		return err
	}
	for _, i := range pending {
		if drain() {
			return errDrained
		}
		dur, err := o.runUnit(ctx, t, ch, project, stage, i, env)
		if err != nil {
			return err
		}
		if err := o.recordUnitDone(ctx, t.ID, project, stage, i, dur); err != nil {
			return err
		}
	}

	// Completion is decided by the files, not the loop above.
	complete := true
	var settleErr error
	err = o.tasks.UpdateLedger(ctx, t.ID, func(l models.Ledger) {
		complete, settleErr = ledger.Settle(project, stage, counts, l)
	})
	if err != nil {
		return fmt.Errorf("settling ledger: %w", err)
	}
	if settleErr != nil {
		return settleErr
	}
	if !complete {
		return fmt.Errorf("%s stage incomplete after run, outputs missing on storage", stage)
	}
	return nil
}

// runUnit produces one sub-item and verifies its output file.
func (o *Orchestrator) runUnit(ctx context.Context, t *ent.Task, ch *ent.Channel, project *workspace.Project, stage models.Stage, i int, env map[string]string) (time.Duration, error) {
	path, err := ledger.UnitPath(project, stage, i)
	if err != nil {
		return 0, err
	}

	if stage == models.StageComposites {
		start := time.Now()
		if err := o.compositeUnit(project, ch, i); err != nil {
			return 0, err
		}
		return time.Since(start), nil
	}

	req, err := o.unitRequest(t, ch, project, stage, i, path, env)
	if err != nil {
		return 0, err
	}
	res, err := o.runner.Run(ctx, req)
	if err != nil {
		return 0, err
	}
	if !workspace.FileReady(path) {
		return 0, fmt.Errorf("%s exited cleanly but produced no output for unit %d", req.Command, i)
	}
	return res.Duration, nil
}

// recordUnitDone persists one unit's completion: ledger mark, accumulated
// stage duration, the measured narration length for audio, and the unit
// cost.
func (o *Orchestrator) recordUnitDone(ctx context.Context, taskID string, project *workspace.Project, stage models.Stage, i int, dur time.Duration) error {
	err := o.tasks.UpdateLedger(ctx, taskID, func(l models.Ledger) {
		step := l.Step(stage)
		step.MarkDone(i)
		step.DurationS += dur.Seconds()
		if stage == models.StageAudio {
			if d, derr := driver.NarrationDuration(project.NarrationPath(i)); derr == nil {
				if step.NarrationDurations == nil {
					step.NarrationDurations = map[int]float64{}
				}
				step.NarrationDurations[i] = d
			}
		}
	})
	if err != nil {
		return fmt.Errorf("recording unit %d: %w", i, err)
	}
	if cost := o.cfg.Stages.UnitCostUSD[stage]; cost > 0 {
		if err := o.tasks.RecordCost(ctx, taskID, stage, cost, 1); err != nil {
			return fmt.Errorf("recording unit cost: %w", err)
		}
	}
	return nil
}

// unitRequest builds the generator invocation for one sub-item.
func (o *Orchestrator) unitRequest(t *ent.Task, ch *ent.Channel, project *workspace.Project, stage models.Stage, i int, outPath string, env map[string]string) (driver.Request, error) {
	req := driver.Request{
		Env:     env,
		Timeout: o.stageTimeout(ch, stage),
		WorkDir: project.Dir(),
	}

	switch stage {
	case models.StageAssets:
		req.Command = o.cfg.Generators.ImageCmd
		req.Args = []string{"--prompt", assetPrompt(t, i), "--output", outPath}

	case models.StageVideo:
		composite := project.CompositePath(i)
		if !workspace.FileReady(composite) {
			return req, permanentf("composite %d missing, cannot generate clip", i)
		}
		url, err := o.publicURL(composite)
		if err != nil {
			return req, err
		}
		req.Command = o.cfg.Generators.VideoCmd
		req.Args = []string{"--image", url, "--prompt", videoPrompt(t, i), "--output", outPath}

	case models.StageAudio:
		voice, err := o.voiceID(ch)
		if err != nil {
			return req, err
		}
		req.Command = o.cfg.Generators.TTSCmd
		req.Args = []string{"--text", narrationText(t, i), "--output", outPath}
		req.Env = withEnv(env, "VOICE_ID", voice)

	case models.StageSFX:
		req.Command = o.cfg.Generators.SFXCmd
		req.Args = []string{"--text", sfxText(t, i), "--output", outPath, "--format", "mp3_44100_128"}

	default:
		return req, fmt.Errorf("stage %q has no generator", stage)
	}
	return req, nil
}

// runAudioRepair regenerates only the narration and SFX clips a reviewer
// flagged, then clears the repair marker. Everything else in the audio
// and sfx ledgers stays done, so the task returns straight to its gate.
func (o *Orchestrator) runAudioRepair(ctx context.Context, t *ent.Task, ch *ent.Channel, project *workspace.Project, env map[string]string, repair *models.AudioRepair, drain func() bool) error {
	regen := func(stage models.Stage, indices []int) error {
		for _, i := range indices {
			if i < 1 || i > t.ClipCount {
				o.logger.Warn("Repair index out of range, skipping",
					"task_id", t.ID, "stage", string(stage), "index", i)
				continue
			}
			if drain() {
				return errDrained
			}
			path, err := ledger.UnitPath(project, stage, i)
			if err != nil {
				return err
			}
			req, err := o.unitRequest(t, ch, project, stage, i, path, env)
			if err != nil {
				return err
			}
			res, err := o.runner.Run(ctx, req)
			if err != nil {
				return err
			}
			if !workspace.FileReady(path) {
				return fmt.Errorf("%s exited cleanly but produced no output for unit %d", req.Command, i)
			}
			if err := o.recordUnitDone(ctx, t.ID, project, stage, i, res.Duration); err != nil {
				return err
			}
		}
		return nil
	}

	if err := regen(models.StageAudio, repair.Narration); err != nil {
		return err
	}
	if err := regen(models.StageSFX, repair.SFX); err != nil {
		return err
	}

	return o.tasks.UpdateLedger(ctx, t.ID, func(l models.Ledger) {
		l.Step(models.StageAudio).FailedAudioClipNumbers = nil
	})
}

// runAssembly writes the manifest, invokes the assembler once, and
// verifies the final output.
func (o *Orchestrator) runAssembly(ctx context.Context, t *ent.Task, ch *ent.Channel, project *workspace.Project, steps models.Ledger, env map[string]string, drain func() bool) error {
	if drain() {
		return errDrained
	}

	manifest, err := buildManifest(project, t.ClipCount, steps)
	if err != nil {
		return err
	}
	if err := writeManifest(project.ManifestPath(), manifest); err != nil {
		return err
	}

	req := driver.Request{
		Command: o.cfg.Generators.AssembleCmd,
		Args:    []string{"--manifest", project.ManifestPath(), "--output", project.FinalPath()},
		Env:     env,
		Timeout: o.stageTimeout(ch, models.StageAssembly),
		WorkDir: project.Dir(),
	}
	res, err := o.runner.Run(ctx, req)
	if err != nil {
		return err
	}
	if !workspace.FileReady(project.FinalPath()) {
		return fmt.Errorf("%s exited cleanly but produced no final output", req.Command)
	}

	return o.tasks.UpdateLedger(ctx, t.ID, func(l models.Ledger) {
		step := l.Step(models.StageAssembly)
		step.MarkDone(1)
		step.Completed = true
		step.DurationS += res.Duration.Seconds()
	})
}

// stageTimeout resolves the generator timeout for one stage: the
// channel's per-stage override when set, otherwise the process default.
func (o *Orchestrator) stageTimeout(ch *ent.Channel, stage models.Stage) time.Duration {
	if secs, ok := ch.StageTimeoutsS[string(stage)]; ok && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return o.cfg.Stages.Timeout(stage)
}

// credentialEnv decrypts the channel's credential blob into generator
// environment variables: "elevenlabs" becomes ELEVENLABS_API_KEY.
func (o *Orchestrator) credentialEnv(ch *ent.Channel) (map[string]string, error) {
	if ch.CredentialsEnc == "" {
		return map[string]string{}, nil
	}
	creds, err := o.decryptor.Credentials(ch.CredentialsEnc)
	if err != nil {
		return nil, err
	}
	env := make(map[string]string, len(creds))
	for service, secret := range creds {
		key := strings.ToUpper(strings.ReplaceAll(service, "-", "_")) + "_API_KEY"
		env[key] = secret
	}
	return env, nil
}

// publicURL maps a workspace path to the URL the video generator can
// fetch it from.
func (o *Orchestrator) publicURL(absPath string) (string, error) {
	if o.cfg.PublicAssetBaseURL == "" {
		return "", permanentf("public asset base URL not configured, video generation needs fetchable composites")
	}
	rel, err := relToRoot(o.layout.Root(), absPath)
	if err != nil {
		return "", permanentf("path %s outside workspace root", absPath)
	}
	return o.cfg.PublicAssetBaseURL + "/" + rel, nil
}

// voiceID resolves the TTS voice: channel voice first, then the
// process-wide default.
func (o *Orchestrator) voiceID(ch *ent.Channel) (string, error) {
	if ch.VoiceID != nil && *ch.VoiceID != "" {
		return *ch.VoiceID, nil
	}
	if o.cfg.DefaultVoiceID != "" {
		return o.cfg.DefaultVoiceID, nil
	}
	return "", permanentf("no TTS voice configured for channel %s", ch.ID)
}

func withEnv(env map[string]string, key, value string) map[string]string {
	out := make(map[string]string, len(env)+1)
	for k, v := range env {
		out[k] = v
	}
	out[key] = value
	return out
}
