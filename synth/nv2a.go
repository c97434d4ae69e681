// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

import (
	"fmt"
	"strings"

	"github.com/embeddedgo/nvtools/decode"
)

// Config holds the hand curated knowledge the headers do not carry.
type Config struct {
	ClassPrefix  string                        // prefix of the class number in the first name token
	Bespoke      map[string]string             // command -> bespoke routine
	Float        map[string]bool               // commands with IEEE-754 parameters
	Bool         map[string]bool               // on/off commands
	Packed       map[string]decode.Packed      // commands with two 16-bit halves
	Arrays       map[string]decode.Array       // repeated commands
	StructArrays map[string]decode.StructArray // arrays of structures
	Names        map[Key]string                // names that override the generated ones
}

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// NV2A returns the configuration for the NV2A PGRAPH methods.
func NV2A() *Config {
	return &Config{
		ClassPrefix: "NV",
		Bespoke: map[string]string{
			"NV097_DRAW_ARRAYS":                   "DrawArrays",
			"NV097_SET_COLOR_MASK":                "ColorMask",
			"NV097_SET_COLOR_MATERIAL":            "ColorMaterial",
			"NV097_SET_COMBINER_ALPHA_ICW":        "CombinerICW",
			"NV097_SET_COMBINER_ALPHA_OCW":        "CombinerAlphaOCW",
			"NV097_SET_COMBINER_COLOR_ICW":        "CombinerICW",
			"NV097_SET_COMBINER_COLOR_OCW":        "CombinerColorOCW",
			"NV097_SET_COMBINER_CONTROL":          "CombinerControl",
			"NV097_SET_COMBINER_FACTOR0":          "CombinerColorFactor",
			"NV097_SET_COMBINER_FACTOR1":          "CombinerColorFactor",
			"NV097_SET_COMBINER_SPECULAR_FOG_CW0": "CombinerSpecularFogCW0",
			"NV097_SET_COMBINER_SPECULAR_FOG_CW1": "CombinerSpecularFogCW1",
			"NV097_SET_CONTROL0":                  "Control0",
			"NV097_SET_LIGHT_CONTROL":             "LightControl",
			"NV097_SET_LIGHT_ENABLE_MASK":         "LightEnableMask",
			"NV097_SET_SHADER_OTHER_STAGE_INPUT":  "OtherStageInput",
			"NV097_SET_SHADER_STAGE_PROGRAM":      "ShaderStageProgram",
			"NV097_SET_SPECULAR_FOG_FACTOR":       "CombinerColorFactor",
			"NV097_SET_SURFACE_FORMAT":            "SurfaceFormat",
			"NV097_SET_TEXGEN_Q":                  "TexgenQ",
			"NV097_SET_TEXGEN_R":                  "TexgenRST",
			"NV097_SET_TEXGEN_S":                  "TexgenRST",
			"NV097_SET_TEXGEN_T":                  "TexgenRST",
			"NV097_SET_TEXTURE_ADDRESS":           "TextureAddress",
			"NV097_SET_TEXTURE_CONTROL0":          "TextureControl0",
			"NV097_SET_TEXTURE_CONTROL1":          "TextureControl1",
			"NV097_SET_TEXTURE_FILTER":            "TextureFilter",
			"NV097_SET_TEXTURE_FORMAT":            "TextureFormat",
			"NV097_SET_TEXTURE_PALETTE":           "TexturePalette",
			"NV097_SET_VERTEX_DATA_ARRAY_FORMAT":  "VertexDataArrayFormat",
		},
		Float: set(
			"NV097_ARRAY_ELEMENT16",
			"NV097_ARRAY_ELEMENT32",
			"NV097_DRAW_ARRAYS",
			"NV097_INLINE_ARRAY",
			"NV097_SET_BACK_LIGHT_AMBIENT_COLOR",
			"NV097_SET_BACK_LIGHT_DIFFUSE_COLOR",
			"NV097_SET_BACK_LIGHT_SPECULAR_COLOR",
			"NV097_SET_BACK_MATERIAL_ALPHA",
			"NV097_SET_BACK_MATERIAL_EMISSION",
			"NV097_SET_BACK_SCENE_AMBIENT_COLOR",
			"NV097_SET_BACK_SPECULAR_PARAMS",
			"NV097_SET_CLIP_MAX",
			"NV097_SET_CLIP_MIN",
			"NV097_SET_COMPOSITE_MATRIX",
			"NV097_SET_DIFFUSE_COLOR3F",
			"NV097_SET_DIFFUSE_COLOR4F",
			"NV097_SET_EYE_POSITION",
			"NV097_SET_EYE_VECTOR",
			"NV097_SET_FOG_COORD",
			"NV097_SET_FOG_PARAMS",
			"NV097_SET_FOG_PLANE",
			"NV097_SET_INVERSE_MODEL_VIEW_MATRIX",
			"NV097_SET_LIGHT_AMBIENT_COLOR",
			"NV097_SET_LIGHT_DIFFUSE_COLOR",
			"NV097_SET_LIGHT_INFINITE_DIRECTION",
			"NV097_SET_LIGHT_INFINITE_HALF_VECTOR",
			"NV097_SET_LIGHT_LOCAL_ATTENUATION",
			"NV097_SET_LIGHT_LOCAL_POSITION",
			"NV097_SET_LIGHT_LOCAL_RANGE",
			"NV097_SET_LIGHT_SPECULAR_COLOR",
			"NV097_SET_LIGHT_SPOT_DIRECTION",
			"NV097_SET_LIGHT_SPOT_FALLOFF",
			"NV097_SET_MATERIAL_ALPHA",
			"NV097_SET_MATERIAL_EMISSION",
			"NV097_SET_MODEL_VIEW_MATRIX",
			"NV097_SET_NORMAL3F",
			"NV097_SET_POINT_PARAMS",
			"NV097_SET_PROJECTION_MATRIX",
			"NV097_SET_SCENE_AMBIENT_COLOR",
			"NV097_SET_SPECULAR_COLOR3F",
			"NV097_SET_SPECULAR_COLOR4F",
			"NV097_SET_SPECULAR_PARAMS",
			"NV097_SET_TEXCOORD0_2F",
			"NV097_SET_TEXCOORD0_4F",
			"NV097_SET_TEXCOORD1_2F",
			"NV097_SET_TEXCOORD1_4F",
			"NV097_SET_TEXCOORD2_2F",
			"NV097_SET_TEXCOORD2_4F",
			"NV097_SET_TEXCOORD3_2F",
			"NV097_SET_TEXCOORD3_4F",
			"NV097_SET_TEXTURE_MATRIX",
			"NV097_SET_TRANSFORM_CONSTANT",
			"NV097_SET_TRANSFORM_DATA",
			"NV097_SET_VERTEX3F",
			"NV097_SET_VERTEX4F",
			"NV097_SET_VERTEX_DATA2F_M",
			"NV097_SET_VERTEX_DATA4F_M",
			"NV097_SET_VIEWPORT_OFFSET",
			"NV097_SET_VIEWPORT_SCALE",
			"NV097_SET_WEIGHT1F",
			"NV097_SET_WEIGHT2F",
			"NV097_SET_WEIGHT3F",
			"NV097_SET_WEIGHT4F",
		),
		Bool: set(
			"NV097_SET_ALPHA_TEST_ENABLE",
			"NV097_SET_BLEND_ENABLE",
			"NV097_SET_CULL_FACE_ENABLE",
			"NV097_SET_DEPTH_TEST_ENABLE",
			"NV097_SET_DITHER_ENABLE",
			"NV097_SET_FOG_ENABLE",
			"NV097_SET_LIGHTING_ENABLE",
			"NV097_SET_LINE_SMOOTH_ENABLE",
			"NV097_SET_POINT_PARAMS_ENABLE",
			"NV097_SET_POINT_SMOOTH_ENABLE",
			"NV097_SET_POLY_OFFSET_FILL_ENABLE",
			"NV097_SET_POLY_OFFSET_LINE_ENABLE",
			"NV097_SET_POLY_OFFSET_POINT_ENABLE",
			"NV097_SET_POLY_SMOOTH_ENABLE",
			"NV097_SET_SPECULAR_ENABLE",
			"NV097_SET_STENCIL_TEST_ENABLE",
			"NV097_SET_TEXTURE_MATRIX_ENABLE",
		),
		Packed: map[string]decode.Packed{
			"NV062_SET_PITCH":                   {Low: "Source", High: "Destination"},
			"NV097_ARRAY_ELEMENT16":             {Low: "V0", High: "V1"},
			"NV097_SET_CLEAR_RECT_HORIZONTAL":   {Low: "Min", High: "Max"},
			"NV097_SET_CLEAR_RECT_VERTICAL":     {Low: "Min", High: "Max"},
			"NV097_SET_SURFACE_CLIP_HORIZONTAL": {Low: "Offset", High: "Size"},
			"NV097_SET_SURFACE_CLIP_VERTICAL":   {Low: "Offset", High: "Size"},
			"NV097_SET_SURFACE_PITCH":           {Low: "Color", High: "Zeta"},
			"NV097_SET_TEXCOORD0_2S":            {Low: "U", High: "V"},
			"NV097_SET_TEXCOORD1_2S":            {Low: "U", High: "V"},
			"NV097_SET_TEXCOORD2_2S":            {Low: "U", High: "V"},
			"NV097_SET_TEXCOORD3_2S":            {Low: "U", High: "V"},
			"NV097_SET_TEXTURE_IMAGE_RECT":      {Low: "H", High: "W"},
			"NV097_SET_WINDOW_CLIP_HORIZONTAL":  {Low: "Offset", High: "Size"},
			"NV097_SET_WINDOW_CLIP_VERTICAL":    {Low: "Offset", High: "Size"},
			"NV09F_CONTROL_POINT_IN":            {Low: "X", High: "Y"},
			"NV09F_CONTROL_POINT_OUT":           {Low: "X", High: "Y"},
			"NV09F_SIZE":                        {Low: "W", High: "H"},
		},
		Arrays: map[string]decode.Array{
			"NV097_SET_BACK_MATERIAL_EMISSION":      {Stride: 4, Count: 3},
			"NV097_SET_BACK_SCENE_AMBIENT_COLOR":    {Stride: 4, Count: 3},
			"NV097_SET_BACK_SPECULAR_PARAMS":        {Stride: 4, Count: 6},
			"NV097_SET_COLOR_KEY_COLOR":             {Stride: 4, Count: 4},
			"NV097_SET_COMBINER_ALPHA_ICW":          {Stride: 4, Count: 8},
			"NV097_SET_COMBINER_ALPHA_OCW":          {Stride: 4, Count: 8},
			"NV097_SET_COMBINER_COLOR_ICW":          {Stride: 4, Count: 8},
			"NV097_SET_COMBINER_COLOR_OCW":          {Stride: 4, Count: 8},
			"NV097_SET_COMBINER_FACTOR0":            {Stride: 4, Count: 8},
			"NV097_SET_COMBINER_FACTOR1":            {Stride: 4, Count: 8},
			"NV097_SET_COMPOSITE_MATRIX":            {Stride: 4, Count: 16},
			"NV097_SET_EYE_POSITION":                {Stride: 4, Count: 4},
			"NV097_SET_EYE_VECTOR":                  {Stride: 4, Count: 3},
			"NV097_SET_FOG_PARAMS":                  {Stride: 4, Count: 3},
			"NV097_SET_FOG_PLANE":                   {Stride: 4, Count: 4},
			"NV097_SET_MATERIAL_EMISSION":           {Stride: 4, Count: 3},
			"NV097_SET_NORMAL3F":                    {Stride: 4, Count: 3},
			"NV097_SET_POINT_PARAMS":                {Stride: 4, Count: 8},
			"NV097_SET_PROJECTION_MATRIX":           {Stride: 4, Count: 16},
			"NV097_SET_SCENE_AMBIENT_COLOR":         {Stride: 4, Count: 3},
			"NV097_SET_SPECULAR_FOG_FACTOR":         {Stride: 4, Count: 2},
			"NV097_SET_SPECULAR_PARAMS":             {Stride: 4, Count: 6},
			"NV097_SET_STIPPLE_PATTERN":             {Stride: 4, Count: 32},
			"NV097_SET_TEXGEN_Q":                    {Stride: 16, Count: 4},
			"NV097_SET_TEXGEN_R":                    {Stride: 16, Count: 4},
			"NV097_SET_TEXGEN_S":                    {Stride: 16, Count: 4},
			"NV097_SET_TEXGEN_T":                    {Stride: 16, Count: 4},
			"NV097_SET_TEXTURE_ADDRESS":             {Stride: 0x40, Count: 4},
			"NV097_SET_TEXTURE_BORDER_COLOR":        {Stride: 0x40, Count: 4},
			"NV097_SET_TEXTURE_CONTROL0":            {Stride: 0x40, Count: 4},
			"NV097_SET_TEXTURE_CONTROL1":            {Stride: 0x40, Count: 4},
			"NV097_SET_TEXTURE_FILTER":              {Stride: 0x40, Count: 4},
			"NV097_SET_TEXTURE_FORMAT":              {Stride: 0x40, Count: 4},
			"NV097_SET_TEXTURE_IMAGE_RECT":          {Stride: 0x40, Count: 4},
			"NV097_SET_TEXTURE_MATRIX_ENABLE":       {Stride: 4, Count: 4},
			"NV097_SET_TEXTURE_OFFSET":              {Stride: 0x40, Count: 4},
			"NV097_SET_TEXTURE_PALETTE":             {Stride: 0x40, Count: 4},
			"NV097_SET_TEXTURE_SET_BUMP_ENV_OFFSET": {Stride: 0x40, Count: 4},
			"NV097_SET_TEXTURE_SET_BUMP_ENV_SCALE":  {Stride: 0x40, Count: 4},
			"NV097_SET_TRANSFORM_CONSTANT":          {Stride: 4, Count: 32},
			"NV097_SET_TRANSFORM_DATA":              {Stride: 4, Count: 4},
			"NV097_SET_TRANSFORM_PROGRAM":           {Stride: 4, Count: 32},
			"NV097_SET_VERTEX3F":                    {Stride: 4, Count: 3},
			"NV097_SET_VERTEX4F":                    {Stride: 4, Count: 4},
			"NV097_SET_VERTEX_DATA2F_M":             {Stride: 4, Count: 32},
			"NV097_SET_VERTEX_DATA2S":               {Stride: 4, Count: 16},
			"NV097_SET_VERTEX_DATA4F_M":             {Stride: 4, Count: 64},
			"NV097_SET_VERTEX_DATA4UB":              {Stride: 4, Count: 16},
			"NV097_SET_VERTEX_DATA_ARRAY_FORMAT":    {Stride: 4, Count: 16},
			"NV097_SET_VERTEX_DATA_ARRAY_OFFSET":    {Stride: 4, Count: 16},
			"NV097_SET_VIEWPORT_OFFSET":             {Stride: 4, Count: 4},
			"NV097_SET_VIEWPORT_SCALE":              {Stride: 4, Count: 4},
			"NV097_SET_WEIGHT2F":                    {Stride: 4, Count: 2},
			"NV097_SET_WEIGHT3F":                    {Stride: 4, Count: 3},
			"NV097_SET_WEIGHT4F":                    {Stride: 4, Count: 4},
		},
		StructArrays: map[string]decode.StructArray{
			"NV097_SET_BACK_LIGHT_AMBIENT_COLOR":   {Stride: 64, Count: 8, FieldSize: 4, FieldCount: 3},
			"NV097_SET_BACK_LIGHT_DIFFUSE_COLOR":   {Stride: 64, Count: 8, FieldSize: 4, FieldCount: 3},
			"NV097_SET_BACK_LIGHT_SPECULAR_COLOR":  {Stride: 64, Count: 8, FieldSize: 4, FieldCount: 3},
			"NV097_SET_INVERSE_MODEL_VIEW_MATRIX":  {Stride: 64, Count: 4, FieldSize: 4, FieldCount: 16},
			"NV097_SET_LIGHT_AMBIENT_COLOR":        {Stride: 128, Count: 8, FieldSize: 4, FieldCount: 3},
			"NV097_SET_LIGHT_DIFFUSE_COLOR":        {Stride: 128, Count: 8, FieldSize: 4, FieldCount: 3},
			"NV097_SET_LIGHT_INFINITE_DIRECTION":   {Stride: 128, Count: 8, FieldSize: 4, FieldCount: 3},
			"NV097_SET_LIGHT_INFINITE_HALF_VECTOR": {Stride: 128, Count: 8, FieldSize: 4, FieldCount: 3},
			"NV097_SET_LIGHT_LOCAL_ATTENUATION":    {Stride: 128, Count: 8, FieldSize: 4, FieldCount: 3},
			"NV097_SET_LIGHT_LOCAL_POSITION":       {Stride: 128, Count: 8, FieldSize: 4, FieldCount: 3},
			"NV097_SET_LIGHT_LOCAL_RANGE":          {Stride: 128, Count: 8, FieldSize: 4, FieldCount: 1},
			"NV097_SET_LIGHT_SPECULAR_COLOR":       {Stride: 128, Count: 8, FieldSize: 4, FieldCount: 3},
			"NV097_SET_LIGHT_SPOT_DIRECTION":       {Stride: 128, Count: 8, FieldSize: 4, FieldCount: 4},
			"NV097_SET_LIGHT_SPOT_FALLOFF":         {Stride: 128, Count: 8, FieldSize: 4, FieldCount: 3},
			"NV097_SET_MODEL_VIEW_MATRIX":          {Stride: 64, Count: 4, FieldSize: 4, FieldCount: 16},
			"NV097_SET_TEXGEN_PLANE_Q":             {Stride: 64, Count: 4, FieldSize: 4, FieldCount: 4},
			"NV097_SET_TEXGEN_PLANE_R":             {Stride: 64, Count: 4, FieldSize: 4, FieldCount: 4},
			"NV097_SET_TEXGEN_PLANE_S":             {Stride: 64, Count: 4, FieldSize: 4, FieldCount: 4},
			"NV097_SET_TEXGEN_PLANE_T":             {Stride: 64, Count: 4, FieldSize: 4, FieldCount: 4},
			"NV097_SET_TEXTURE_MATRIX":             {Stride: 64, Count: 4, FieldSize: 4, FieldCount: 16},
			"NV097_SET_TEXTURE_SET_BUMP_ENV_MAT":   {Stride: 0x40, Count: 4, FieldSize: 4, FieldCount: 4},
		},
		Names: NV2ANames(),
	}
}

// Vertex attribute slots with the names of their four components.
var vertexAttrs = []struct {
	name  string
	comps [4]string
}{
	{"pos", [4]string{"x", "y", "z", "w"}},
	{"weights", [4]string{"0", "1", "2", "3"}},
	{"normal", [4]string{"x", "y", "z", "w"}},
	{"diffuse", [4]string{"r", "g", "b", "a"}},
	{"specular", [4]string{"r", "g", "b", "a"}},
	{"fog_coord", [4]string{"0", "1", "2", "3"}},
	{"point_size", [4]string{"0", "1", "2", "3"}},
	{"back_diffuse", [4]string{"r", "g", "b", "a"}},
	{"back_specular", [4]string{"r", "g", "b", "a"}},
	{"tex0", [4]string{"u", "v", "2", "3"}},
	{"tex1", [4]string{"u", "v", "2", "3"}},
	{"tex2", [4]string{"u", "v", "2", "3"}},
	{"tex3", [4]string{"u", "v", "2", "3"}},
	{"13", [4]string{"0", "1", "2", "3"}},
	{"14", [4]string{"0", "1", "2", "3"}},
	{"15", [4]string{"0", "1", "2", "3"}},
}

// vertexSlots names the method slots of the cmd vertex data method that sets
// n components of every attribute, per components in a single method.
func vertexSlots(cmd string, n, per int) []string {
	var names []string
	for _, a := range vertexAttrs {
		for i := 0; i < n; i += per {
			names = append(
				names,
				fmt.Sprintf("%s[%s][%s]", cmd, a.name, strings.Join(a.comps[i:i+per], "|")),
			)
		}
	}
	return names
}

// ExpandSequential names the consecutive methods of the class starting at
// base, stride bytes apart, one for every element of names. The index of
// the method is appended to its name.
func ExpandSequential(class, base, stride uint32, names []string) map[Key]string {
	m := make(map[Key]string, len(names))
	for i, name := range names {
		m[Key{class, base + uint32(i)*stride}] = fmt.Sprintf("%s[%d]", name, i)
	}
	return m
}

// NV2ANames returns the method names that cannot be derived from the
// headers: several names for one offset, per element array slots and
// packed sub-word layouts.
func NV2ANames() map[Key]string {
	names := map[Key]string{
		{0x97, 0x1720}: "NV097_SET_VERTEX_DATA_ARRAY_OFFSET__POS",
		{0x97, 0x1724}: "NV097_SET_VERTEX_DATA_ARRAY_OFFSET__WEIGHT",
		{0x97, 0x1728}: "NV097_SET_VERTEX_DATA_ARRAY_OFFSET__NORMAL",
		{0x97, 0x172C}: "NV097_SET_VERTEX_DATA_ARRAY_OFFSET__DIFFUSE",
		{0x97, 0x1730}: "NV097_SET_VERTEX_DATA_ARRAY_OFFSET__SPECULAR",
		{0x97, 0x1734}: "NV097_SET_VERTEX_DATA_ARRAY_OFFSET__FOG_COORD",
		{0x97, 0x1738}: "NV097_SET_VERTEX_DATA_ARRAY_OFFSET__POINT_SIZE",
		{0x97, 0x173C}: "NV097_SET_VERTEX_DATA_ARRAY_OFFSET__BACK_DIFFUSE",
		{0x97, 0x1740}: "NV097_SET_VERTEX_DATA_ARRAY_OFFSET__BACK_SPECULAR",
		{0x97, 0x1744}: "NV097_SET_VERTEX_DATA_ARRAY_OFFSET__TEX0",
		{0x97, 0x1748}: "NV097_SET_VERTEX_DATA_ARRAY_OFFSET__TEX1",
		{0x97, 0x174C}: "NV097_SET_VERTEX_DATA_ARRAY_OFFSET__TEX2",
		{0x97, 0x1750}: "NV097_SET_VERTEX_DATA_ARRAY_OFFSET__TEX3",
		{0x97, 0x1754}: "NV097_SET_VERTEX_DATA_ARRAY_OFFSET__13",
		{0x97, 0x1758}: "NV097_SET_VERTEX_DATA_ARRAY_OFFSET__14",
		{0x97, 0x175C}: "NV097_SET_VERTEX_DATA_ARRAY_OFFSET__15",
		{0x97, 0x1760}: "NV097_SET_VERTEX_DATA_ARRAY_FORMAT__POS",
		{0x97, 0x1764}: "NV097_SET_VERTEX_DATA_ARRAY_FORMAT__WEIGHT",
		{0x97, 0x1768}: "NV097_SET_VERTEX_DATA_ARRAY_FORMAT__NORMAL",
		{0x97, 0x176C}: "NV097_SET_VERTEX_DATA_ARRAY_FORMAT__DIFFUSE",
		{0x97, 0x1770}: "NV097_SET_VERTEX_DATA_ARRAY_FORMAT__SPECULAR",
		{0x97, 0x1774}: "NV097_SET_VERTEX_DATA_ARRAY_FORMAT__FOG_COORD",
		{0x97, 0x1778}: "NV097_SET_VERTEX_DATA_ARRAY_FORMAT__POINT_SIZE",
		{0x97, 0x177C}: "NV097_SET_VERTEX_DATA_ARRAY_FORMAT__BACK_DIFFUSE",
		{0x97, 0x1780}: "NV097_SET_VERTEX_DATA_ARRAY_FORMAT__BACK_SPECULAR",
		{0x97, 0x1784}: "NV097_SET_VERTEX_DATA_ARRAY_FORMAT__TEX0",
		{0x97, 0x1788}: "NV097_SET_VERTEX_DATA_ARRAY_FORMAT__TEX1",
		{0x97, 0x178C}: "NV097_SET_VERTEX_DATA_ARRAY_FORMAT__TEX2",
		{0x97, 0x1790}: "NV097_SET_VERTEX_DATA_ARRAY_FORMAT__TEX3",
		{0x97, 0x1794}: "NV097_SET_VERTEX_DATA_ARRAY_FORMAT__13",
		{0x97, 0x1798}: "NV097_SET_VERTEX_DATA_ARRAY_FORMAT__14",
		{0x97, 0x179C}: "NV097_SET_VERTEX_DATA_ARRAY_FORMAT__15",
		{0x97, 0x1940}: "NV097_SET_VERTEX_DATA4UB[pos]",
		{0x97, 0x1944}: "NV097_SET_VERTEX_DATA4UB[weights]",
		{0x97, 0x1948}: "NV097_SET_VERTEX_DATA4UB[normal]",
		{0x97, 0x194C}: "NV097_SET_VERTEX_DATA4UB[diffuse]",
		{0x97, 0x1950}: "NV097_SET_VERTEX_DATA4UB[specular]",
		{0x97, 0x1954}: "NV097_SET_VERTEX_DATA4UB[fog_coord]",
		{0x97, 0x1958}: "NV097_SET_VERTEX_DATA4UB[point_size]",
		{0x97, 0x195C}: "NV097_SET_VERTEX_DATA4UB[back_diffuse]",
		{0x97, 0x1960}: "NV097_SET_VERTEX_DATA4UB[back_specular]",
		{0x97, 0x1964}: "NV097_SET_VERTEX_DATA4UB[tex0]",
		{0x97, 0x1968}: "NV097_SET_VERTEX_DATA4UB[tex1]",
		{0x97, 0x196C}: "NV097_SET_VERTEX_DATA4UB[tex2]",
		{0x97, 0x1970}: "NV097_SET_VERTEX_DATA4UB[tex3]",
		{0x97, 0x1974}: "NV097_SET_VERTEX_DATA4UB[13]",
		{0x97, 0x1978}: "NV097_SET_VERTEX_DATA4UB[14]",
		{0x97, 0x197C}: "NV097_SET_VERTEX_DATA4UB[15]",
	}
	for _, seq := range []struct {
		base  uint32
		names []string
	}{
		{0x1880, vertexSlots("NV097_SET_VERTEX_DATA2F_M", 2, 1)},
		{0x1900, vertexSlots("NV097_SET_VERTEX_DATA2S", 2, 2)},
		{0x1980, vertexSlots("NV097_SET_VERTEX_DATA4S_M", 4, 2)},
		{0x1A00, vertexSlots("NV097_SET_VERTEX_DATA4F_M", 4, 1)},
	} {
		for k, name := range ExpandSequential(0x97, seq.base, 4, seq.names) {
			names[k] = name
		}
	}
	return names
}
