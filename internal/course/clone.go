package course

// Clone returns a deep copy of the assignment. The store clones its input
// before rewriting file paths so the caller's value is never mutated.
func (a *Assignment) Clone() *Assignment {
	if a == nil {
		return nil
	}

	out := *a
	out.Tags = cloneStrings(a.Tags)
	out.Position = append([]int(nil), a.Position...)
	out.Next = cloneStrings(a.Next)
	out.Previous = cloneStrings(a.Previous)
	out.Module = cloneInt64(a.Module)
	out.Level = cloneInt64(a.Level)

	if a.Variations != nil {
		out.Variations = make(map[string]Variation, len(a.Variations))
		for key, v := range a.Variations {
			out.Variations[key] = v.clone()
		}
	}
	return &out
}

func (v Variation) clone() Variation {
	out := v
	out.Files = append([]FileRecord(nil), v.Files...)
	out.UsedIn = cloneStrings(v.UsedIn)
	if v.ExampleRuns != nil {
		out.ExampleRuns = make(map[string]ExampleRun, len(v.ExampleRuns))
		for key, run := range v.ExampleRuns {
			runCopy := run
			runCopy.Inputs = cloneStrings(run.Inputs)
			runCopy.CmdInputs = cloneStrings(run.CmdInputs)
			out.ExampleRuns[key] = runCopy
		}
	}
	if v.CGConfig != nil {
		cfg := *v.CGConfig
		out.CGConfig = &cfg
	}
	return out
}

// Clone returns a deep copy of a module.
func (m *Module) Clone() *Module {
	if m == nil {
		return nil
	}
	out := *m
	out.Tags = cloneStrings(m.Tags)
	return &out
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	return append([]string(nil), values...)
}

func cloneInt64(value *int64) *int64 {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
