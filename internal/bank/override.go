package bank

// QuestionOverride replaces the display of a canonical question on one tier.
// Options and items without weights inherit the canonical weights: options by
// label, ranking items by position. An override that carries its own weights
// is authoritative for that question only.
type QuestionOverride struct {
	ID      int           `yaml:"-" json:"id"`
	Text    string        `yaml:"text,omitempty" json:"text,omitempty"`
	Options []Option      `yaml:"options,omitempty" json:"options,omitempty"`
	Left    string        `yaml:"left,omitempty" json:"left,omitempty"`
	Right   string        `yaml:"right,omitempty" json:"right,omitempty"`
	Items   []RankingItem `yaml:"items,omitempty" json:"items,omitempty"`
}

// Apply returns q with the override substituted. q itself is not modified.
// An override whose ID does not match q is a no-op.
func (o QuestionOverride) Apply(q Question) Question {
	out := q.Clone()
	if o.ID != q.ID {
		return out
	}

	if o.Text != "" {
		out.Text = o.Text
	}

	if len(o.Options) > 0 {
		opts := make([]Option, 0, len(o.Options))
		for _, ov := range o.Options {
			opt := Option{Label: ov.Label, Text: ov.Text, Weights: cloneWeights(ov.Weights)}
			if len(opt.Weights) == 0 {
				if canonical, ok := q.Option(ov.Label); ok {
					opt.Weights = cloneWeights(canonical.Weights)
				}
			}
			opts = append(opts, opt)
		}
		out.Options = opts
	}

	if o.Left != "" && out.Left != nil {
		out.Left.Label = o.Left
	}
	if o.Right != "" && out.Right != nil {
		out.Right.Label = o.Right
	}

	if len(o.Items) > 0 {
		items := make([]RankingItem, 0, len(o.Items))
		for i, ov := range o.Items {
			it := RankingItem{Text: ov.Text, Weights: cloneWeights(ov.Weights)}
			if len(it.Weights) == 0 && i < len(q.Items) {
				it.Weights = cloneWeights(q.Items[i].Weights)
			}
			items = append(items, it)
		}
		out.Items = items
	}

	return out
}

// carriesWeights reports whether the override supplies any scoring structure of its own.
func (o QuestionOverride) carriesWeights() bool {
	for _, opt := range o.Options {
		if len(opt.Weights) > 0 {
			return true
		}
	}
	for _, it := range o.Items {
		if len(it.Weights) > 0 {
			return true
		}
	}
	return false
}
