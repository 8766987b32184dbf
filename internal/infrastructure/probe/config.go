package probe

type Config struct {
	FFProbePath string `yaml:"ffprobe_path"`
}
