package config

const (
	defaultLogDir          = "~/.local/share/voiceclean/logs"
	defaultHistoryDB       = "~/.local/share/voiceclean/history.db"
	defaultBaseURL         = "https://api.elevenlabs.io"
	defaultRequestTimeout  = 300
	defaultAudioFormat     = "mp3"
	defaultAudioCodec      = "libmp3lame"
	defaultAudioBitrate    = "192k"
	defaultAudioChannels   = 2
	defaultMergeVideoCodec = "copy"
	defaultMergeAudioCodec = "aac"
	defaultOutputSuffix    = "_clean"
	defaultBatchSubdir     = "processed_videos"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:    defaultLogDir,
			HistoryDB: defaultHistoryDB,
		},
		ElevenLabs: ElevenLabs{
			BaseURL:        defaultBaseURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Extraction: Extraction{
			AudioFormat:   defaultAudioFormat,
			AudioCodec:    defaultAudioCodec,
			AudioBitrate:  defaultAudioBitrate,
			AudioChannels: defaultAudioChannels,
		},
		Merge: Merge{
			VideoCodec:   defaultMergeVideoCodec,
			AudioCodec:   defaultMergeAudioCodec,
			AudioBitrate: defaultAudioBitrate,
		},
		Output: Output{
			Suffix:      defaultOutputSuffix,
			BatchSubdir: defaultBatchSubdir,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
