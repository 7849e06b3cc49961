package telegraph

func Build() (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	return NewClient(cfg)
}
