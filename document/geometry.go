package document

import "pzg/config"

// SectionGeometry is page size, margins and header/footer offsets applied
// uniformly to the whole document. All values are centimeters.
type SectionGeometry struct {
	PageWidthCm      float64
	PageHeightCm     float64
	MarginTopCm      float64
	MarginBottomCm   float64
	MarginLeftCm     float64
	MarginRightCm    float64
	HeaderDistanceCm float64
	FooterDistanceCm float64
}

// DefaultGeometry returns A4 with GOST 7.32 margins.
func DefaultGeometry() SectionGeometry {
	return SectionGeometry{
		PageWidthCm:      21.0,
		PageHeightCm:     29.7,
		MarginTopCm:      2.0,
		MarginBottomCm:   2.0,
		MarginLeftCm:     3.0,
		MarginRightCm:    1.5,
		HeaderDistanceCm: 1.25,
		FooterDistanceCm: 1.25,
	}
}

// GeometryFromConfig builds geometry from loaded configuration.
func GeometryFromConfig(conf *config.PageConfig) SectionGeometry {
	return SectionGeometry{
		PageWidthCm:      conf.WidthCm,
		PageHeightCm:     conf.HeightCm,
		MarginTopCm:      conf.MarginTopCm,
		MarginBottomCm:   conf.MarginBottomCm,
		MarginLeftCm:     conf.MarginLeftCm,
		MarginRightCm:    conf.MarginRightCm,
		HeaderDistanceCm: conf.HeaderDistanceCm,
		FooterDistanceCm: conf.FooterDistanceCm,
	}
}

// Metadata is the fixed title-page data record.
type Metadata struct {
	StudentName     string
	StudentFullName string
	Group           string
	TeacherName     string
	Topic           string
	Year            string
}

// MetadataFromConfig builds metadata from loaded configuration.
func MetadataFromConfig(conf *config.MetadataConfig) Metadata {
	return Metadata{
		StudentName:     conf.StudentName,
		StudentFullName: conf.StudentFullName,
		Group:           conf.Group,
		TeacherName:     conf.TeacherName,
		Topic:           conf.Topic,
		Year:            conf.Year,
	}
}
