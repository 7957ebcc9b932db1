package config

type SkillTreeConfig struct {
	Tree TreeNode `yaml:"tree"`
}

// TreeNode is the YAML form of one skill-decision-tree node. Condition is an
// expr source over {Caster, Target}; an empty condition marks a leaf.
type TreeNode struct {
	Skill     string     `yaml:"skill"`
	Condition string     `yaml:"condition"`
	Priority  int        `yaml:"priority"`
	Children  []TreeNode `yaml:"children"`
}
