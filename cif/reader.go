package cif

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Reader tokenizes the minimal CIF subset this package understands:
// single "_tag value" lines and "loop_" blocks of "_tag" headers
// followed by whitespace-separated data rows. Anything else (multi-
// line ';' text fields, nested loops, save frames) is skipped rather
// than rejected, matching the "minimal extraction" framing.
type Reader struct{}

// NewReader returns a Reader.
func NewReader() *Reader { return &Reader{} }

// Parse reads one CIF data block from src and extracts it into a
// Record.
func (r *Reader) Parse(src io.Reader) (*Record, error) {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	singular := map[string]string{}
	var loopRows []map[string]string
	var loopTags []string
	inLoopHeader := false

	for scanner.Scan() {
		line := strings.TrimSpace(norm.NFC.String(scanner.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			inLoopHeader = false
			loopTags = nil
			continue
		}
		lower := strings.ToLower(line)
		if lower == "loop_" {
			loopTags = nil
			inLoopHeader = true
			continue
		}
		if strings.HasPrefix(line, "_") {
			fields := splitRow(line)
			tag := strings.ToLower(fields[0])
			if inLoopHeader {
				loopTags = append(loopTags, tag)
				continue
			}
			if len(fields) > 1 {
				singular[tag] = strings.Join(fields[1:], " ")
			}
			continue
		}

		inLoopHeader = false
		if len(loopTags) == 0 {
			continue
		}
		values := splitRow(line)
		if len(values) < len(loopTags) {
			continue
		}
		row := make(map[string]string, len(loopTags))
		for i, tag := range loopTags {
			row[tag] = values[i]
		}
		loopRows = append(loopRows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return build(singular, loopRows), nil
}

// splitRow splits a CIF line on whitespace, treating single- or
// double-quoted runs as one field even when they contain spaces.
func splitRow(line string) []string {
	var out []string
	var cur strings.Builder
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				cur.WriteByte(c)
			}
		case c == '\'' || c == '"':
			quote = c
		case c == ' ' || c == '\t':
			if cur.Len() > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteByte(c)
		}
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

func build(singular map[string]string, loopRows []map[string]string) *Record {
	rec := &Record{}
	rec.CellLengths[0] = parseFloat(singular["_cell_length_a"])
	rec.CellLengths[1] = parseFloat(singular["_cell_length_b"])
	rec.CellLengths[2] = parseFloat(singular["_cell_length_c"])
	rec.CellAngles[0] = parseFloat(singular["_cell_angle_alpha"])
	rec.CellAngles[1] = parseFloat(singular["_cell_angle_beta"])
	rec.CellAngles[2] = parseFloat(singular["_cell_angle_gamma"])

	rec.HallSymbol = firstNonEmpty(singular["_symmetry_space_group_name_hall"], singular["_space_group_name_hall"])
	rec.HMSymbol = firstNonEmpty(singular["_symmetry_space_group_name_h-m"], singular["_space_group_name_h-m_alt"])
	if v := firstNonEmpty(singular["_symmetry_int_tables_number"], singular["_space_group_it_number"]); v != "" {
		n, _ := strconv.Atoi(v)
		rec.IntTablesNumber = n
	}

	for _, row := range loopRows {
		if xyz := firstNonEmpty(row["_symmetry_equiv_pos_as_xyz"], row["_space_group_symop_operation_xyz"]); xyz != "" {
			rec.SymmetryXYZ = append(rec.SymmetryXYZ, xyz)
		}
		if label, ok := row["_atom_site_label"]; ok {
			occ := 0.0
			if v, ok := row["_atom_site_occupancy"]; ok {
				occ = parseFloat(v)
			}
			rec.Atoms = append(rec.Atoms, AtomRecord{
				Label:     label,
				Symbol:    row["_atom_site_type_symbol"],
				Fract:     [3]float64{parseFloat(row["_atom_site_fract_x"]), parseFloat(row["_atom_site_fract_y"]), parseFloat(row["_atom_site_fract_z"])},
				Occupancy: occ,
			})
		}
		if a1, ok := row["_geom_bond_atom_site_label_1"]; ok {
			rec.Bonds = append(rec.Bonds, BondRecord{
				Atom1:    a1,
				Atom2:    row["_geom_bond_atom_site_label_2"],
				Distance: parseFloat(row["_geom_bond_distance"]),
			})
		}
	}
	return rec
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// parseFloat tolerates CIF's trailing standard-uncertainty notation,
// e.g. "10.234(5)".
func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '('); i >= 0 {
		s = s[:i]
	}
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
