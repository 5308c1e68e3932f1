package main

import (
	"go.uber.org/zap"

	"github.com/younwookim/lustrous/internal/application/replay"
	"github.com/younwookim/lustrous/internal/application/system"
	"github.com/younwookim/lustrous/internal/logger"
)

// autoRecord makes -record pick a timestamped file name
const autoRecord = "auto"

// inputSource picks where frames come from: a replay file, or the live
// keyboard and mouse, recorded when recordPath is set.
// The recorder is nil unless recording.
func inputSource(replayPath, recordPath, mapName string) (system.InputSource, *replay.Recorder, error) {
	if replayPath != "" {
		data, err := replay.LoadReplay(replayPath)
		if err != nil {
			return nil, nil, err
		}
		if data.Map != mapName {
			logger.Warn("replay was recorded on another map",
				zap.String("recorded", data.Map), zap.String("current", mapName))
		}
		logger.Info("replaying input",
			zap.String("file", replayPath),
			zap.Int("frames", len(data.Frames)))
		return replay.NewReplayer(*data), nil, nil
	}

	live := system.NewInputSystem()
	if recordPath == "" {
		return live, nil, nil
	}

	rec := replay.NewRecorder(mapName)
	logger.Info("recording enabled", zap.String("file", recordPath))
	return replay.Record(live, rec), rec, nil
}

// recordFile resolves the -record flag to a file name
func recordFile(flagValue string) string {
	if flagValue == autoRecord {
		return replay.GenerateFilename()
	}
	return flagValue
}

// saveRecording writes whatever rec captured; nil rec is a no-op
func saveRecording(rec *replay.Recorder, filename string) {
	if rec == nil {
		return
	}
	rec.Stop()

	if err := rec.Save(filename); err != nil {
		logger.Error("failed to save recording", zap.String("file", filename), zap.Error(err))
		return
	}
	logger.Info("recording saved", zap.String("file", filename), zap.Int("frames", rec.FrameCount()))
}
