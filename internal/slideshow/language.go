package slideshow

// Language returns the active language.
func (c *Controller) Language() string {
	return c.language
}

// SelectLanguage makes lang the single active language.
func (c *Controller) SelectLanguage(lang string) bool {
	if c.busy || lang == c.language || !c.knownLanguage(lang) {
		return false
	}
	c.begin()
	defer c.end()

	c.language = lang
	return true
}

func (c *Controller) knownLanguage(lang string) bool {
	for _, l := range c.languages {
		if l == lang {
			return true
		}
	}
	return false
}
