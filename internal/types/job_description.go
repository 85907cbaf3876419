// Package types defines the shared data model for resume ranking: parsed job
// descriptions, structured resumes, per-candidate scores and ranking results.
package types

// JobDescription is the structured form of a job posting. List fields preserve
// the order produced by the extraction model and may contain duplicates.
//
// When structured extraction fails, RawText is still populated so that lexical
// scoring remains possible downstream.
type JobDescription struct {
	Title            string   `json:"title,omitempty" mapstructure:"title"`
	Company          string   `json:"company,omitempty" mapstructure:"company"`
	Location         string   `json:"location,omitempty" mapstructure:"location"`
	Responsibilities []string `json:"responsibilities" mapstructure:"responsibilities"`
	Requirements     []string `json:"requirements" mapstructure:"requirements"`
	NiceToHave       []string `json:"nice_to_have" mapstructure:"nice_to_have"`
	Keywords         []string `json:"keywords" mapstructure:"keywords"`
	RawText          string   `json:"raw_text,omitempty" mapstructure:"raw_text"`
}

// Text returns the best text for engines that need direct access to the
// posting: the preserved raw text when available, otherwise a reconstruction
// is not attempted and the empty string is returned.
func (jd *JobDescription) Text() string {
	if jd == nil {
		return ""
	}
	return jd.RawText
}
